package routeros

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/rickicode/mikrotik-billing/internal/entities"
	"github.com/rickicode/mikrotik-billing/internal/errs"
)

// commands that take the device down or wipe it are never sent.
var blockedCommands = []string{
	"/system/reboot",
	"/system/shutdown",
	"/system/reset-configuration",
	"/system/routerboard/upgrade",
	"/system/package/downgrade",
	"/system/package/update/install",
	"/system/backup/load",
	"/system/license/renew",
}

func (s *Service) validateCommand(cmd entities.Command) (err error) {
	if err = s.validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %w", errs.ErrValidation, err)
	}

	if strings.ContainsFunc(cmd.Path, unicode.IsSpace) {
		return fmt.Errorf("%w: path %q contains whitespace", errs.ErrValidation, cmd.Path)
	}

	segments := strings.Split(strings.TrimPrefix(cmd.Path, "/"), "/")
	if len(segments) < 2 || lo.Contains(segments, "") {
		return fmt.Errorf("%w: malformed path %q", errs.ErrValidation, cmd.Path)
	}

	if lo.Contains(blockedCommands, strings.ToLower(cmd.Path)) {
		return fmt.Errorf("%w: command %s is not allowed", errs.ErrValidation, cmd.Path)
	}

	for _, param := range cmd.Params {
		key := strings.TrimPrefix(param.Key, "?")
		if lo.IsEmpty(key) || strings.ContainsFunc(key, unicode.IsSpace) || (strings.Contains(key, "=") && !param.IsQuery()) {
			return fmt.Errorf("%w: malformed parameter %q", errs.ErrValidation, param.Key)
		}
	}

	return nil
}
