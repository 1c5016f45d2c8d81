package main

import (
	"github.com/jobforgeproject/jobforge/cmd/jobforgectl/cmd"
	"github.com/jobforgeproject/jobforge/internal/common"
)

func main() {
	common.ConfigureCommandLineLogging()
	cmd.Execute()
}
