package main

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	// set level from env
	levels := map[string]logrus.Level{}
	for _, l := range logrus.AllLevels {
		levels[l.String()] = l
	}
	if x, exists := os.LookupEnv("LOG"); exists {
		if level, exists := levels[strings.ToLower(x)]; exists {
			log.SetLevel(level)
		}
	}

	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(sealCmd)
	rootCmd.AddCommand(openCmd)
}

var rootCmd = &cobra.Command{
	Use:   "boxutil",
	Short: "Crypto box utilities",
}
