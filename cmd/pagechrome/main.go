package main

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

const (
	pageInfoFileExt  = ".json"
	pageInfoFileName = "page_info" + pageInfoFileExt
)

func main() {
	path := pageInfoFileName
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	pi, err := loadPageInfo(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Fatal("Failed to load page info")
	}

	if err = pageInfoOutputInit(pi); err != nil {
		log.WithError(err).WithField("path", path).Fatal("Failed to prepare page")
	}

	if err = generate(pi); err != nil {
		log.WithError(err).WithField("output", pi.output.path).Fatal("Failed to generate page")
	}
}

func loadPageInfo(path string) (pi *pageInfo, err error) {
	fileContent, err := os.ReadFile(path)
	if err != nil {
		return
	}

	pi = &pageInfo{}

	if err = json.Unmarshal(fileContent, pi); err != nil {
		err = fmt.Errorf("decode %s: %w", path, err)
		return
	}

	return
}
