package main

import (
	"encoding/base64"
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/vaultbox/go-cryptobox"
	"github.com/vaultbox/go-cryptobox/box_chacha20poly1305"
)

type provider = box_chacha20poly1305.Provider

var (
	keyPath string
	ad      string
)

func init() {
	for _, c := range []*cobra.Command{sealCmd, openCmd} {
		c.Flags().StringVar(&keyPath, "key", "", "--key=path/to/key")
		c.Flags().StringVar(&ad, "ad", "", "--ad=associated-data")
	}
}

var keygenCmd = &cobra.Command{
	Use:   "keygen <path>",
	Short: "Generate a key and write it base64 encoded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := cryptobox.Random[provider]()
		if err != nil {
			return err
		}
		defer k.Destroy()
		data := []byte(base64.StdEncoding.EncodeToString(k.Bytes()))
		log.Debugf("writing key to %s", args[0])
		return ioutil.WriteFile(args[0], data, 0o600)
	},
}

var sealCmd = &cobra.Command{
	Use:   "seal <in> <out>",
	Short: "Seal a file with the key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := loadKey()
		if err != nil {
			return err
		}
		defer k.Destroy()
		ptext, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}
		ctext, err := cryptobox.Seal(k, []byte(ad), ptext)
		if err != nil {
			return err
		}
		log.Debugf("sealed %d bytes into %d", len(ptext), len(ctext))
		return ioutil.WriteFile(args[1], ctext, 0o644)
	},
}

var openCmd = &cobra.Command{
	Use:   "open <in> <out>",
	Short: "Open a sealed file with the key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := loadKey()
		if err != nil {
			return err
		}
		defer k.Destroy()
		ctext, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}
		ptext, err := cryptobox.Open(k, []byte(ad), ctext)
		if err != nil {
			return err
		}
		return ioutil.WriteFile(args[1], ptext, 0o600)
	},
}

func loadKey() (*cryptobox.Key[provider], error) {
	data, err := ioutil.ReadFile(keyPath)
	if err != nil {
		return nil, err
	}
	raw, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		return nil, err
	}
	k, err := cryptobox.Load[provider](raw)
	if err != nil {
		return nil, err
	}
	// scrub the key material when the command is done with it
	k.OnDestroy(func(buf []byte) {
		for i := range buf {
			buf[i] = 0
		}
	})
	return k, nil
}
