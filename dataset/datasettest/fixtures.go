// Package datasettest writes small city datasets for tests.
package datasettest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/l2enel/Revisited-Udacity/dataset/config"
	"github.com/stretchr/testify/require"
)

// ChicagoCSV has the optional Gender and Birth Year columns, the last trip lacks both values
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Subscriber,Male,1981.0
304487,2017-03-06 13:49:38,2017-03-06 13:55:28,350,Christiana Ave & Lawrence Ave,St. Louis Ave & Balmoral Ave,Subscriber,Male,1986.0
45207,2017-01-17 14:53:07,2017-01-17 15:02:01,534,Clark St & Randolph St,Desplaines St & Jackson Blvd,Subscriber,Male,1975.0
1473887,2017-06-26 09:01:20,2017-06-26 09:11:06,586,Clinton St & Washington Blvd,Canal St & Taylor St,Subscriber,Male,1990.0
961916,2017-05-26 09:41:44,2017-05-26 09:46:25,281,Wood St & Hubbard St,Wood St & Hubbard St,Customer,,
`

// WashingtonCSV lacks Gender and Birth Year. Two trips in march, one in june
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-03-28 14:07:13,2017-03-28 14:22:08,895.0,Lincoln Memorial,Jefferson Memorial,Subscriber
482740,2017-03-12 09:30:00,2017-03-12 09:40:00,600.0,Lincoln Memorial,Union Station,Customer
1330037,2017-06-21 17:45:10,2017-06-21 18:05:10,1200.0,14th & V St NW,Georgetown Waterfront,Subscriber
`

// WashingtonStationsCSV locations of the stations of WashingtonCSV, Union Station is missing on purpose
const WashingtonStationsCSV = `name,latitude,longitude
Lincoln Memorial,38.8893,-77.0502
Jefferson Memorial,38.8814,-77.0365
14th & V St NW,38.9176,-77.0321
Georgetown Waterfront,38.9021,-77.0594
`

// HeaderOnly returns the first line of a csv, a dataset without trips
func HeaderOnly(content string) string {
	header, _, _ := strings.Cut(content, "\n")
	return header + "\n"
}

// WriteFile writes content in dir/filename and returns its path
func WriteFile(t *testing.T, dir string, filename string, content string) string {
	t.Helper()
	path := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// NewConfig returns a dataset config that reads the files of dir
func NewConfig(dir string) *config.DatasetConfig {
	cfg := config.Default()
	cfg.DataDir = dir
	return &cfg
}

// NewCityDir writes the chicago and washington datasets in a temporary directory
// and returns a config that points to it
func NewCityDir(t *testing.T) *config.DatasetConfig {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "chicago.csv", ChicagoCSV)
	WriteFile(t, dir, "washington.csv", WashingtonCSV)
	return NewConfig(dir)
}
