package core

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var InfoLogger *log.Logger
var WarningLogger *log.Logger
var ErrorLogger *log.Logger

const DefaultLogPath = "steamshelf.log"

func init() {
	InfoLogger = log.New(os.Stderr, "INFO\t", log.Ldate|log.Ltime)
	WarningLogger = log.New(os.Stderr, "WARN\t", log.Ldate|log.Ltime)
	ErrorLogger = log.New(os.Stderr, "ERROR\t", log.Lshortfile|log.Ldate|log.Ltime)
}

func InitLoggingWithDefaultPath() error {
	path, err := os.UserCacheDir()
	if err != nil {
		return err
	}

	return InitLoggingWithPath(filepath.Join(path, DefaultLogPath))
}

func InitLoggingWithPath(path string) error {
	fmt.Println("Creating logfile at " + path)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}
	InfoLogger = log.New(file, "INFO\t", log.Ldate|log.Ltime)
	WarningLogger = log.New(file, "WARN\t", log.Ldate|log.Ltime)
	ErrorLogger = log.New(file, "ERROR\t", log.Lshortfile|log.Ldate|log.Ltime)
	log.SetOutput(file)
	return nil
}
