// File: registry.go
// Title: Operation Registry
// Description: Holds the operation definitions, resolves names and aliases
//              case-insensitively and validates arguments before invoking
//              an operation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	ierror "github.com/msto63/istring/core/error"
	"github.com/msto63/istring/core/errors"
	"github.com/msto63/istring/core/log"
	"github.com/msto63/istring/utils/stringx"
)

const moduleName = "catalog"

// Registry is the default catalog implementation
type Registry struct {
	operations map[string]*Operation // lower-case name -> operation
	aliases    map[string]aliasEntry // lower-case alias -> entry
	logger     *log.Logger
	mutex      sync.RWMutex
	options    Options
}

type aliasEntry struct {
	alias     string
	operation string
}

var _ Interface = (*Registry)(nil)

// New creates a registry holding every built-in operation
func New(opts Options) (*Registry, error) {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	r := &Registry{
		operations: make(map[string]*Operation),
		aliases:    make(map[string]aliasEntry),
		logger:     opts.Logger.WithField("component", "catalog"),
		options:    opts,
	}

	for _, op := range builtinOperations() {
		if err := r.Register(op); err != nil {
			return nil, ierror.Wrap(err, "failed to register builtin operations").
				WithOperation("catalog.New")
		}
	}

	if !opts.DisableAliases {
		for alias, name := range builtinAliases {
			if err := r.RegisterAlias(alias, name); err != nil {
				return nil, ierror.Wrap(err, "failed to register builtin aliases").
					WithOperation("catalog.New")
			}
		}
	}

	r.logger.Debug("catalog initialized", log.Fields{
		"operationCount": len(r.operations),
		"aliasCount":     len(r.aliases),
	})
	return r, nil
}

// Register adds an operation. Names are unique regardless of case.
func (r *Registry) Register(op *Operation) error {
	if op == nil || op.Invoke == nil {
		return errors.InvalidInput(moduleName, "register", op, "operation with an invoke function")
	}
	if strings.TrimSpace(op.Name) == "" {
		return errors.InvalidInput(moduleName, "register", op.Name, "non-empty operation name")
	}

	seenOptional := false
	for _, p := range op.Params {
		if p.Required && seenOptional {
			return errors.InvalidInput(moduleName, "register", p.Name, "required parameters before optional ones")
		}
		seenOptional = seenOptional || !p.Required
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	key := strings.ToLower(op.Name)
	if _, exists := r.operations[key]; exists {
		return errors.NewErrorBuilder(moduleName).
			Operation("register").
			Messagef("operation %s already registered", op.Name).
			Code(ierror.CodeInvalidArgument).
			Build()
	}
	if _, exists := r.aliases[key]; exists {
		return errors.NewErrorBuilder(moduleName).
			Operation("register").
			Messagef("operation %s collides with an alias", op.Name).
			Code(ierror.CodeInvalidArgument).
			Build()
	}

	r.operations[key] = op
	r.logger.Trace("operation registered", log.Fields{"operation": op.Name, "params": len(op.Params)})
	return nil
}

// RegisterAlias makes alias resolve to the operation name
func (r *Registry) RegisterAlias(alias, name string) error {
	if strings.TrimSpace(alias) == "" {
		return errors.InvalidInput(moduleName, "registerAlias", alias, "non-empty alias")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	op, exists := r.operations[strings.ToLower(name)]
	if !exists {
		return errors.NotFound(moduleName, "registerAlias", fmt.Sprintf("operation %q", name))
	}

	key := strings.ToLower(alias)
	if _, taken := r.operations[key]; taken {
		return errors.NewErrorBuilder(moduleName).
			Operation("registerAlias").
			Messagef("alias %s shadows an operation", alias).
			Code(ierror.CodeInvalidArgument).
			Build()
	}

	r.aliases[key] = aliasEntry{alias: alias, operation: op.Name}
	r.logger.Trace("alias registered", log.Fields{"alias": alias, "operation": op.Name})
	return nil
}

// resolve returns the operation for a name or alias; callers hold the lock
func (r *Registry) resolve(name string) (*Operation, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if entry, ok := r.aliases[key]; ok {
		key = strings.ToLower(entry.operation)
	}
	op, ok := r.operations[key]
	return op, ok
}

// Has reports whether name or an alias of that name is registered
func (r *Registry) Has(name string) bool {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	_, ok := r.resolve(name)
	return ok
}

// Lookup returns the operation registered under name or alias
func (r *Registry) Lookup(name string) (*Operation, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	op, ok := r.resolve(name)
	if !ok {
		return nil, errors.NotFound(moduleName, "lookup", fmt.Sprintf("operation %q", name))
	}
	return op, nil
}

// Names returns the canonical operation names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.operations))
	for _, op := range r.operations {
		names = append(names, op.Name)
	}
	sort.Strings(names)
	return names
}

// AliasesOf returns the aliases of an operation in sorted order
func (r *Registry) AliasesOf(name string) []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	op, ok := r.resolve(name)
	if !ok {
		return nil
	}

	var aliases []string
	for _, entry := range r.aliases {
		if entry.operation == op.Name {
			aliases = append(aliases, entry.alias)
		}
	}
	sort.Strings(aliases)
	return aliases
}

// Invoke validates call against the operation's parameters and runs it.
// Absent arguments are only passed to parameters that accept them; any
// other absent argument fails with INVALID_ARGUMENT before the operation
// runs.
func (r *Registry) Invoke(name string, call Call) (Result, error) {
	op, err := r.Lookup(name)
	if err != nil {
		return Result{}, err
	}

	in, err := bind(op, call)
	if err != nil {
		r.logger.Debug("invocation rejected", log.Fields{"operation": op.Name, "code": ierror.GetCode(err).String()})
		return Result{}, err
	}
	in.formatter = r.formatterFor(call)

	r.logger.Debug("operation invoked", log.Fields{
		"operation": op.Name,
		"args":      len(call.Args),
		"mode":      call.Mode.String(),
	})
	return op.Invoke(in)
}

func (r *Registry) formatterFor(call Call) *stringx.Formatter {
	opts := []stringx.FormatterOption{stringx.WithLogger(r.logger)}
	if r.options.DefaultContext != nil {
		opts = append(opts, stringx.WithDefaultContext(r.options.DefaultContext))
	}
	if call.Missing != nil {
		opts = append(opts, stringx.WithMissing(*call.Missing))
	}
	return stringx.NewFormatter(opts...)
}

// bind checks the arguments and converts integer parameters
func bind(op *Operation, call Call) (*Invocation, error) {
	if len(call.Args) > len(op.Params) {
		return nil, errors.InvalidInput(moduleName, op.Name, len(call.Args),
			fmt.Sprintf("at most %d arguments", len(op.Params)))
	}

	in := &Invocation{
		call:    call,
		args:    make([]*string, len(op.Params)),
		ints:    make([]int, len(op.Params)),
		present: make([]bool, len(op.Params)),
	}

	for i, p := range op.Params {
		var arg *string
		supplied := i < len(call.Args)
		if supplied {
			arg = call.Args[i]
		}

		if arg == nil {
			if p.Nullable || (!supplied && !p.Required) {
				continue
			}
			return nil, errors.AbsentValue(moduleName, op.Name, p.Name)
		}

		in.args[i] = arg
		in.present[i] = true

		if p.Kind == ParamInt {
			n, err := strconv.Atoi(strings.TrimSpace(*arg))
			if err != nil {
				return nil, errors.InvalidInput(moduleName, op.Name, *arg,
					fmt.Sprintf("integer for %s", p.Name))
			}
			in.ints[i] = n
		}
	}
	return in, nil
}

// Invocation gives an operation access to its bound arguments
type Invocation struct {
	call      Call
	args      []*string
	ints      []int
	present   []bool
	formatter *stringx.Formatter
}

// Ptr returns argument i, nil when absent
func (in *Invocation) Ptr(i int) *string {
	return in.args[i]
}

// Text returns argument i, "" when absent
func (in *Invocation) Text(i int) string {
	if in.args[i] == nil {
		return ""
	}
	return *in.args[i]
}

// Int returns integer argument i
func (in *Invocation) Int(i int) int {
	return in.ints[i]
}

// OptionalInt returns integer argument i as a variadic slice
func (in *Invocation) OptionalInt(i int) []int {
	if !in.present[i] {
		return nil
	}
	return []int{in.ints[i]}
}

// OptionalText returns argument i as a variadic slice
func (in *Invocation) OptionalText(i int) []string {
	if !in.present[i] {
		return nil
	}
	return []string{*in.args[i]}
}

// Mode returns the match mode of the call
func (in *Invocation) Mode() stringx.MatchMode {
	return in.call.Mode
}

// Format renders a template with the call's context
func (in *Invocation) Format(template string) string {
	return in.formatter.Format(template, in.call.Context)
}
