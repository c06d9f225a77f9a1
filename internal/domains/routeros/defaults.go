package routeros

import (
	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/entities"
)

// defaultReply is returned instead of an error when the device could not serve the command.
// Reads get no rows, creates get a synthetic id and mutations report success.
func (s *Service) defaultReply(cmd entities.Command, cause error) entities.Reply {
	reply := entities.Reply{
		Rows:     make([]entities.Row, 0),
		Offline:  s.conn.offline,
		Degraded: true,
		Cause:    cause,
	}

	if cmd.Kind() == entities.CommandKindCreate {
		reply.Ret = constants.OfflineIDPrefix + s.newID()
	}

	return reply
}
