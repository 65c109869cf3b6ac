// Package actions provides leaf nodes: fixed outcomes, a retry fixture,
// arbitrary Go functions and boolean expressions over entity and world.
package actions
