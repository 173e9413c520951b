package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"marquee/internal/config"
	"marquee/internal/core"
	"marquee/internal/logging"
	"marquee/internal/media"
)

const cliLogFileName = "marquee.log"

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	jsonFlag     *bool

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		jsonFlag:     jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(c.configFlagValue())
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

func (c *commandContext) configFlagValue() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) logLevel() string {
	if c.logLevelFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.logLevelFlag)
}

func (c *commandContext) logger() (*slog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logCfg := *cfg
	if level := c.logLevel(); level != "" {
		logCfg.Logging.Level = level
	}
	return logging.NewFromConfig(&logCfg, cliLogFileName)
}

// withServices opens the domain services for one command and closes them
// when fn returns.
func (c *commandContext) withServices(fn func(*core.Services) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := c.logger()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	svc, err := core.Open(cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()
	return fn(svc)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// parseTitleArgs reads "<kind> <id>".
func parseTitleArgs(args []string) (media.Kind, int64, error) {
	kind, err := media.ParseKind(args[0])
	if err != nil {
		return media.KindUnknown, 0, err
	}
	id, err := parseID(args[1])
	if err != nil {
		return media.KindUnknown, 0, err
	}
	return kind, id, nil
}

func parseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", value)
	}
	return id, nil
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
