//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput          = "gen"
	sqliteFileLocation = "padelengine.sqlite"
	serverBin          = "./bin/padelengine"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, "cmd/main.go")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin)
}

// GenJet regenerates the database model from the sqlite schema
func GenJet() error {
	return sh.Run("go", "run", "github.com/go-jet/jet/v2/cmd/jet",
		"-source", "sqlite", "-dsn", sqliteFileLocation, "-path", jetOutput)
}

// Test runs all tests
func Test() error {
	return sh.Run("go", "test", "./...")
}

// Clean removes build artifacts and the local database
func Clean() error {
	if err := sh.Rm("bin"); err != nil {
		return err
	}
	return os.RemoveAll(sqliteFileLocation)
}
