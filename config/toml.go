package config

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/slackernews/paygate/node"
)

const configHeader = `# This is a TOML config file.
# For more information, see https://github.com/toml-lang/toml
# The platform signer secret is read from the environment only.

`

func WriteNodeConfigFile(configDirPath string, configName string, config node.Config, mode os.FileMode) error {
	body, err := toml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}

	var buffer bytes.Buffer
	buffer.WriteString(configHeader)
	buffer.Write(body)

	configPath := filepath.Join(configDirPath, configName)
	return ioutil.WriteFile(configPath, buffer.Bytes(), mode)
}
