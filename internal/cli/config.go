package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/tagcloud/pkg/pipeline"
)

// loadConfig reads the --config file, or the default config file when the
// flag is empty. A missing default file is not an error.
func (c *CLI) loadConfig() (pipeline.Options, bool, error) {
	if c.configPath != "" {
		opts, err := pipeline.LoadConfig(c.configPath)
		return opts, err == nil, err
	}
	return pipeline.LoadDefaultConfig()
}

// applyConfig merges the config file into opts. Flags set on the command
// line keep their values; everything else comes from the file.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *pipeline.Options) error {
	file, ok, err := c.loadConfig()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	c.Logger.Debug("loaded config", "path", c.configFile())

	// Flag values are bound to fields of opts, so capture them before the
	// file overwrites those fields.
	type explicit struct {
		value pflag.Value
		str   string
		slice []string
	}
	var set []explicit
	cmd.Flags().Visit(func(f *pflag.Flag) {
		e := explicit{value: f.Value, str: f.Value.String()}
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			e.slice = sv.GetSlice()
		}
		set = append(set, e)
	})

	*opts = file
	for _, e := range set {
		if sv, ok := e.value.(pflag.SliceValue); ok {
			if err := sv.Replace(e.slice); err != nil {
				return err
			}
			continue
		}
		if err := e.value.Set(e.str); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) configFile() string {
	if c.configPath != "" {
		return c.configPath
	}
	return pipeline.DefaultConfigPath()
}
