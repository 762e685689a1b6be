package main

import (
	"pack/name/component_name"
)

func init() {
	component_name.SetExportsPackNameApi(&ComponentNameImpl{})
}

type ComponentNameImpl struct {
	total uint64
}

func (c *ComponentNameImpl) Add(value uint64) {
	c.total += value
}

func (c *ComponentNameImpl) Get() uint64 {
	return c.total
}

func main() {}
