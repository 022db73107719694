package model

import "strings"

// EffectCommand is one entry of the effect chain: the effect name followed by
// its positional arguments.
type EffectCommand struct {
	Effect string   `yaml:"effect"`
	Args   []string `yaml:"args,omitempty"`
}

// NewEffectCommand creates an effect chain entry
func NewEffectCommand(effect string, args ...string) EffectCommand {
	return EffectCommand{Effect: effect, Args: args}
}

// Command returns the entry as it appears on the SoX command line
func (e EffectCommand) Command() string {
	if len(e.Args) == 0 {
		return e.Effect
	}
	return e.Effect + " " + strings.Join(e.Args, " ")
}

// EffectChain is the ordered list of effects applied after the output file
type EffectChain struct {
	items []EffectCommand
}

// NewEffectChain creates a chain holding the given entries
func NewEffectChain(items ...EffectCommand) *EffectChain {
	c := &EffectChain{}
	c.items = append(c.items, items...)
	return c
}

// Add appends an entry
func (c *EffectChain) Add(cmd EffectCommand) {
	c.items = append(c.items, cmd)
}

// Remove deletes the entry at index. It returns false for an invalid index.
func (c *EffectChain) Remove(index int) bool {
	if !c.valid(index) {
		return false
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return true
}

// MoveUp swaps the entry at index with its predecessor
func (c *EffectChain) MoveUp(index int) bool {
	if !c.valid(index) || index == 0 {
		return false
	}
	c.items[index-1], c.items[index] = c.items[index], c.items[index-1]
	return true
}

// MoveDown swaps the entry at index with its successor
func (c *EffectChain) MoveDown(index int) bool {
	if !c.valid(index) || index == len(c.items)-1 {
		return false
	}
	c.items[index+1], c.items[index] = c.items[index], c.items[index+1]
	return true
}

// Clear removes every entry
func (c *EffectChain) Clear() {
	c.items = nil
}

// Len returns the number of entries
func (c *EffectChain) Len() int {
	return len(c.items)
}

// At returns the entry at index
func (c *EffectChain) At(index int) (EffectCommand, bool) {
	if !c.valid(index) {
		return EffectCommand{}, false
	}
	return c.items[index], true
}

// Items returns a copy of the entries in order
func (c *EffectChain) Items() []EffectCommand {
	out := make([]EffectCommand, len(c.items))
	copy(out, c.items)
	return out
}

// Args flattens the chain into SoX positional arguments
func (c *EffectChain) Args() []string {
	var args []string
	for _, item := range c.items {
		args = append(args, item.Effect)
		args = append(args, item.Args...)
	}
	return args
}

func (c *EffectChain) valid(index int) bool {
	return index >= 0 && index < len(c.items)
}
