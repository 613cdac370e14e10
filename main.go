/*
Copyright © 2023 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/abkGami/star-damm-honorary-fee/cmd"
	"github.com/abkGami/star-damm-honorary-fee/domain/config"
)

func main() {
	config.ReadConfig("./config.yaml")
	cmd.Execute()
}
