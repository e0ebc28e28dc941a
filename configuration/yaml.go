package configuration

import (
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

func parseYamlConfigurationFile(fileName string, config interface{}) error {
	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}

	return yaml.Unmarshal(data, config)
}
