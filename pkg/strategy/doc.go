// Package strategy holds the pluggable policies composites use to choose and
// order their children: filters, sorters and pickers.
package strategy
