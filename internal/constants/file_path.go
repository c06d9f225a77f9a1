package constants

const (
	DefaultLogfilePath = "/var/log/mikrotik-billing/billing.log"
	DefaultConfigPath  = "/etc/mikrotik-billing/config.yaml"
)
