/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/personalcolor/colorspace"
	"github.com/mmuldo/personalcolor/palette"
	"github.com/mmuldo/personalcolor/season"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "personalcolor",
	Short: "Personal color (season) diagnosis from skin and fabric samples",
	Long: `personalcolor converts sampled colors between color spaces and classifies
them into Spring, Summer, Autumn or Winter with a tone bucket, an undertone
vote and a confidence score.

Colors are written as #rrggbb, rgb(r,g,b), lab(L,a,b), hsl(h,s%,l%),
hsv(h,s%,v%), cmyk(c,m,y,k) or a temperature like 6500K.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(viper.GetString("log-level"))
		if err != nil {
			return err
		}
		if viper.GetBool("verbose") {
			level = log.DebugLevel
		}
		log.SetLevel(level)
		return nil
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.personalcolor.yaml)")
	flags.String("palette", "", "reference palette file (yaml, json or toml); built-in palette if empty")
	flags.Int("cache-size", colorspace.DefaultCacheSize, "conversion cache entries (0 disables)")
	flags.String("saturation", "chroma", "tone saturation metric: chroma or hsl")
	flags.Int("workers", 1, "classify group samples with this many goroutines")
	flags.String("log-level", "info", "log level")
	flags.BoolP("verbose", "v", false, "debug logging")

	for _, name := range []string{"palette", "cache-size", "saturation", "workers", "log-level", "verbose"} {
		viper.BindPFlag(name, flags.Lookup(name))
	}
}

// initConfig reads in .env, the config file and PCOLOR_* environment variables.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".personalcolor")
	}

	viper.SetEnvPrefix("pcolor")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Debugf("using config file %s", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Fatalf("reading config %s: %v", cfgFile, err)
	}
}

func loadPalette() (*palette.Palette, error) {
	path := viper.GetString("palette")
	if path == "" {
		return palette.Default(), nil
	}
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	log.WithField("path", path).Debug("loading palette")
	return palette.Load(path)
}

func newClassifier() (*season.Classifier, error) {
	p, err := loadPalette()
	if err != nil {
		return nil, err
	}

	conv, err := colorspace.NewConverter(viper.GetInt("cache-size"))
	if err != nil {
		return nil, err
	}

	metric, err := season.ParseSaturationMetric(viper.GetString("saturation"))
	if err != nil {
		return nil, err
	}

	return season.New(p, season.Options{
		Saturation: metric,
		Workers:    viper.GetInt("workers"),
		Converter:  conv,
		Logger:     log.StandardLogger(),
	})
}

func parseColors(args []string) ([]colorspace.Color, error) {
	colors := make([]colorspace.Color, 0, len(args))
	for _, a := range args {
		c, err := colorspace.Parse(a)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", a, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}
