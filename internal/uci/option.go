package uci

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Option is an engine setting advertised on uci and changed by setoption.
type Option interface {
	UciName() string
	UciString() string
	Set(s string) error
}

type BoolOption struct {
	Name  string
	Value *bool
}

func (opt *BoolOption) UciName() string {
	return opt.Name
}

func (opt *BoolOption) UciString() string {
	return fmt.Sprintf("option name %v type check default %v", opt.Name, *opt.Value)
}

func (opt *BoolOption) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("%v: %q is not true or false", opt.Name, s)
	}
	*opt.Value = v
	return nil
}

// DurationOption is a spin option whose value is in milliseconds.
type DurationOption struct {
	Name  string
	Min   time.Duration
	Max   time.Duration
	Value *time.Duration
}

func (opt *DurationOption) UciName() string {
	return opt.Name
}

func (opt *DurationOption) UciString() string {
	return fmt.Sprintf("option name %v type spin default %v min %v max %v",
		opt.Name, opt.Value.Milliseconds(), opt.Min.Milliseconds(), opt.Max.Milliseconds())
}

func (opt *DurationOption) Set(s string) error {
	ms, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%v: %q is not an integer", opt.Name, s)
	}
	var v = time.Duration(ms) * time.Millisecond
	if v < opt.Min || v > opt.Max {
		return fmt.Errorf("%v: %v not in [%v, %v]", opt.Name, ms,
			opt.Min.Milliseconds(), opt.Max.Milliseconds())
	}
	*opt.Value = v
	return nil
}

func findOption(options []Option, name string) (Option, bool) {
	for _, option := range options {
		if strings.EqualFold(option.UciName(), name) {
			return option, true
		}
	}
	return nil, false
}
