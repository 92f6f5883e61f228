// Package commands implements the skyward-log CLI commands.
package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/skyward-sdk/skyward-go/pkg/log"
)

// ParseLayerFlag parses a layer name (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "application", "app":
		return log.LayerApplication, nil
	case "component":
		return log.LayerComponent, nil
	case "backend":
		return log.LayerBackend, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be application, component, or backend)", s)
	}
}

// ParseDirectionFlag parses a direction name (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	case "local":
		return log.DirectionLocal, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in, out, or local)", s)
	}
}

// ParseCategoryFlag parses a category name (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "command":
		return log.CategoryCommand, nil
	case "state":
		return log.CategoryState, nil
	case "commit":
		return log.CategoryCommit, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be command, state, commit, or error)", s)
	}
}

// FilterFlags holds the raw filter flag values shared by view and filter.
type FilterFlags struct {
	ConnID    string
	DeviceID  string
	Component string
	TimeStart string
	TimeEnd   string
	Layer     string
	Direction string
	Category  string
}

// Build converts the flag values into a log filter.
func (f FilterFlags) Build() (log.Filter, error) {
	filter := log.Filter{
		ConnectionID: f.ConnID,
		DeviceID:     f.DeviceID,
		Component:    f.Component,
	}

	if f.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, f.TimeStart)
		if err != nil {
			return filter, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}
	if f.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, f.TimeEnd)
		if err != nil {
			return filter, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}
	if f.Layer != "" {
		l, err := ParseLayerFlag(f.Layer)
		if err != nil {
			return filter, err
		}
		filter.Layer = &l
	}
	if f.Direction != "" {
		d, err := ParseDirectionFlag(f.Direction)
		if err != nil {
			return filter, err
		}
		filter.Direction = &d
	}
	if f.Category != "" {
		c, err := ParseCategoryFlag(f.Category)
		if err != nil {
			return filter, err
		}
		filter.Category = &c
	}
	return filter, nil
}
