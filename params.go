package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dummyapi/user-api-contract-tests/framework/ctest"

	"gopkg.in/yaml.v3"
)

type commandParams struct {
	serviceURL     string
	appID          string
	configFile     string
	filters        ctest.RegexFilters
	skipFile       string
	recordFailures string
	debug          bool
	debugAll       bool
	jUnitFile      string
}

// configFileParams is the optional YAML config file. It covers the settings
// that tend to be fixed for a given environment; anything also given on the
// command line wins over the file.
type configFileParams struct {
	URL       string `yaml:"url"`
	AppID     string `yaml:"appId"`
	JUnitFile string `yaml:"junit"`
	Debug     bool   `yaml:"debug"`
	DebugAll  bool   `yaml:"debugAll"`
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.serviceURL, "url", "", "base URL of the user API")
	fs.StringVar(&c.appID, "app-id", "", "app-id credential sent with every request")
	fs.StringVar(&c.configFile, "config", "", "YAML config file with default settings")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.StringVar(&c.skipFile, "skip-from", "", "file with names of tests to skip, one per line")
	fs.StringVar(&c.recordFailures, "record-failures", "", "file to write names of failed tests to")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
	fs.StringVar(&c.jUnitFile, "junit", "", "write JUnit XML output to the specified path")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.configFile != "" {
		if err := c.applyConfigFile(c.configFile); err != nil {
			fmt.Fprintf(os.Stderr, "error reading config file: %s\n", err)
			return false
		}
	}
	if c.serviceURL == "" {
		fmt.Fprintln(os.Stderr, "-url is required (on the command line or in the config file)")
		fs.Usage()
		return false
	}
	if c.appID == "" {
		fmt.Fprintln(os.Stderr, "-app-id is required (on the command line or in the config file)")
		fs.Usage()
		return false
	}
	return true
}

func (c *commandParams) applyConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var fileParams configFileParams
	if err := yaml.Unmarshal(data, &fileParams); err != nil {
		return err
	}
	if c.serviceURL == "" {
		c.serviceURL = fileParams.URL
	}
	if c.appID == "" {
		c.appID = fileParams.AppID
	}
	if c.jUnitFile == "" {
		c.jUnitFile = fileParams.JUnitFile
	}
	c.debug = c.debug || fileParams.Debug
	c.debugAll = c.debugAll || fileParams.DebugAll
	return nil
}
