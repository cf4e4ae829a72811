// Package unsupported holds field shapes the path generator rejects.
package unsupported

import "time"

type Level int

type Base struct {
	ID int `json:"id"`
}

type Sheet struct {
	Base

	Name    string            `json:"name"`
	Notes   map[string]string `json:"notes"`
	Any     any               `json:"any"`
	Ratio   float32           `json:"ratio"`
	Level   Level             `json:"level"`
	Born    time.Time         `json:"born"`
	Tags    []string          `json:"tags"`
	Secret  string            `json:"-"`
	Nick    string            `json:"name"`
	private int
}
