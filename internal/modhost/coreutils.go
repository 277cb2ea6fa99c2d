// SPDX-License-Identifier: MPL-2.0

package modhost

import (
	"context"
	"fmt"

	"github.com/u-root/u-root/pkg/core"
	"github.com/u-root/u-root/pkg/core/cat"
	"github.com/u-root/u-root/pkg/core/cp"
	"github.com/u-root/u-root/pkg/core/mkdir"
	"github.com/u-root/u-root/pkg/core/mv"
	"github.com/u-root/u-root/pkg/core/rm"
	"github.com/u-root/u-root/pkg/core/touch"
	"mvdan.cc/sh/v3/interp"
)

// coreUtils are the file utilities shop commands may use without the host
// providing them.
var coreUtils = map[string]func() core.Command{
	"cat":   func() core.Command { return cat.New() },
	"cp":    func() core.Command { return cp.New() },
	"mkdir": func() core.Command { return mkdir.New() },
	"mv":    func() core.Command { return mv.New() },
	"rm":    func() core.Command { return rm.New() },
	"touch": func() core.Command { return touch.New() },
}

// coreUtilsHandler runs coreUtils in-process and passes every other
// command to next. A failing utility reports on stderr and exits 1, like its
// host counterpart.
func coreUtilsHandler(next interp.ExecHandlerFunc) interp.ExecHandlerFunc {
	return func(ctx context.Context, args []string) error {
		newCmd, ok := coreUtils[args[0]]
		if !ok {
			return next(ctx, args)
		}

		hc := interp.HandlerCtx(ctx)
		cmd := newCmd()
		cmd.SetIO(hc.Stdin, hc.Stdout, hc.Stderr)
		cmd.SetWorkingDir(hc.Dir)
		cmd.SetLookupEnv(func(name string) (string, bool) {
			v := hc.Env.Get(name)
			return v.Str, v.Set
		})

		if err := cmd.RunContext(ctx, args[1:]...); err != nil {
			fmt.Fprintf(hc.Stderr, "%s: %v\n", args[0], err)
			return interp.ExitStatus(1)
		}
		return nil
	}
}
