// Package policy evaluates moderation policy scripts.
//
// A policy is JavaScript run by otto that defines a global function
//
//	function flagReason(video) { ... }
//
// called once per catalogue video with {id, title, tags}. Returning a
// non-empty string flags the video with that reason; undefined, null,
// false or "" leaves it allowed.
package policy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/robertkrimen/otto"

	"github.com/ytget/vidplayer/errs"
	"github.com/ytget/vidplayer/internal/logger"
	"github.com/ytget/vidplayer/moderation"
	"github.com/ytget/vidplayer/types"
)

const reasonFuncName = "flagReason"

// ErrNoReasonFunc is returned when a script does not define flagReason.
var ErrNoReasonFunc = errors.New("policy: flagReason function not found")

// Policy is a compiled policy script.
type Policy struct {
	name string
	vm   *otto.Otto
	log  *logger.ComponentLogger
}

// Load reads and compiles the policy at path.
func Load(path string) (*Policy, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policy: %w", err)
	}
	return New(filepath.Base(path), string(src))
}

// New compiles src. name is used in log records and errors.
func New(name, src string) (*Policy, error) {
	vm := otto.New()
	if _, err := vm.Run(src); err != nil {
		return nil, fmt.Errorf("failed to run policy %s in otto: %v", name, err)
	}
	fn, err := vm.Get(reasonFuncName)
	if err != nil || !fn.IsFunction() {
		return nil, fmt.Errorf("%s: %w", name, ErrNoReasonFunc)
	}
	return &Policy{name: name, vm: vm, log: logger.WithComponent(logger.ComponentPolicy)}, nil
}

// Name returns the script name.
func (p *Policy) Name() string { return p.name }

// Reason returns the flag reason the policy assigns to v, or "" for none.
func (p *Policy) Reason(v *types.Video) (string, error) {
	data, err := json.Marshal(v.Spec())
	if err != nil {
		return "", fmt.Errorf("encode video %s: %w", v.ID(), err)
	}
	arg, err := p.vm.Call("JSON.parse", nil, string(data))
	if err != nil {
		return "", fmt.Errorf("decode video %s in otto: %v", v.ID(), err)
	}
	value, err := p.vm.Call(reasonFuncName, nil, arg)
	if err != nil {
		return "", fmt.Errorf("failed to call %s for %s: %v", reasonFuncName, v.ID(), err)
	}
	if value.IsUndefined() || value.IsNull() {
		return "", nil
	}
	if value.IsBoolean() {
		if b, _ := value.ToBoolean(); !b {
			return "", nil
		}
	}
	reason, err := value.ToString()
	if err != nil {
		return "", fmt.Errorf("%s did not return a string for %s: %v", reasonFuncName, v.ID(), err)
	}
	return reason, nil
}

// Apply evaluates the policy for every video and flags those it names.
// Videos flagged already keep their reason. It stops at the first script
// error and returns the number of videos flagged so far.
func (p *Policy) Apply(videos []*types.Video) (int, error) {
	flagged := 0
	for _, v := range videos {
		reason, err := p.Reason(v)
		if err != nil {
			return flagged, err
		}
		if reason == "" {
			continue
		}
		if err := moderation.Flag(v, reason); err != nil {
			if errs.CodeOf(err) == errs.CodeAlreadyFlagged {
				continue
			}
			return flagged, err
		}
		flagged++
		p.log.Debug("video flagged by policy", logger.Fields{"video_id": v.ID(), "reason": v.FlagReason()})
	}
	p.log.Info("policy applied", logger.Fields{"policy": p.name, "videos": len(videos), "flagged": flagged})
	return flagged, nil
}
