package entities

// Row is a single reply sentence of a RouterOS API command.
type Row map[string]string

// Reply is the result of an executed command.
type Reply struct {
	Rows []Row  `json:"rows"`
	Ret  string `json:"ret,omitempty"`

	Cached   bool  `json:"cached,omitempty"`
	Offline  bool  `json:"offline,omitempty"`
	Degraded bool  `json:"degraded,omitempty"`
	Cause    error `json:"-"`
}

// CauseMessage returns the absorbed error text, if any.
func (r Reply) CauseMessage() string {
	if r.Cause == nil {
		return ""
	}

	return r.Cause.Error()
}

type BatchResult struct {
	Command Command `json:"command"`
	Reply   Reply   `json:"reply"`
	Err     error   `json:"-"`
}

// OK reports whether the batch item was applied by the device.
func (r BatchResult) OK() bool {
	return r.Err == nil && !r.Reply.Degraded
}
