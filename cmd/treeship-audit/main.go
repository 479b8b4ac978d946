package main

import (
	"github.com/replicatedhq/treeship/pkg/cli"
	"github.com/spf13/viper"
)

func main() {
	cli.Execute(cli.AuditCmd(viper.GetViper()))
}
