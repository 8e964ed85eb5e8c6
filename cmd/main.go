// Command main serves the clinic users and lab tests API.
package main

import (
	"clinic-records-api/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.New()
	if err != nil {
		logrus.Fatalf("Failed to initialize clinic records API: %v", err)
	}

	app.Run()
}
