package entities

import (
	"github.com/samber/lo"
)

// HotspotUser is a row of /ip/hotspot/user.
type HotspotUser struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Password    string `json:"password"`
	Profile     string `json:"profile"`
	Comment     string `json:"comment"`
	LimitUptime string `json:"limitUptime"`
	Uptime      string `json:"uptime"`
	Disabled    bool   `json:"disabled"`
}

type HotspotUsers []HotspotUser

// ByName indexes users by name.
func (u HotspotUsers) ByName() map[string]HotspotUser {
	return lo.KeyBy(u, func(item HotspotUser) string {
		return item.Name
	})
}

// ActiveSession is a row of /ip/hotspot/active.
type ActiveSession struct {
	ID         string `json:"id"`
	User       string `json:"user"`
	Address    string `json:"address"`
	MACAddress string `json:"macAddress"`
	Uptime     string `json:"uptime"`
	Server     string `json:"server"`
}

// PPPoESecret is a row of /ppp/secret.
type PPPoESecret struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Profile  string `json:"profile"`
	Service  string `json:"service"`
	Comment  string `json:"comment"`
	Disabled bool   `json:"disabled"`
}

type PPPoESecrets []PPPoESecret

func (s PPPoESecrets) ByName() map[string]PPPoESecret {
	return lo.KeyBy(s, func(item PPPoESecret) string {
		return item.Name
	})
}

// PPPoESession is a row of /ppp/active.
type PPPoESession struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	CallerID string `json:"callerId"`
	Uptime   string `json:"uptime"`
	Service  string `json:"service"`
}

func ParseHotspotUsers(rows []Row) HotspotUsers {
	return lo.Map(rows, func(row Row, _ int) HotspotUser {
		return HotspotUser{
			ID:          row[".id"],
			Name:        row["name"],
			Password:    row["password"],
			Profile:     row["profile"],
			Comment:     row["comment"],
			LimitUptime: row["limit-uptime"],
			Uptime:      row["uptime"],
			Disabled:    parseBool(row["disabled"]),
		}
	})
}

func ParseActiveSessions(rows []Row) []ActiveSession {
	return lo.Map(rows, func(row Row, _ int) ActiveSession {
		return ActiveSession{
			ID:         row[".id"],
			User:       row["user"],
			Address:    row["address"],
			MACAddress: row["mac-address"],
			Uptime:     row["uptime"],
			Server:     row["server"],
		}
	})
}

func ParsePPPoESecrets(rows []Row) PPPoESecrets {
	return lo.Map(rows, func(row Row, _ int) PPPoESecret {
		return PPPoESecret{
			ID:       row[".id"],
			Name:     row["name"],
			Password: row["password"],
			Profile:  row["profile"],
			Service:  row["service"],
			Comment:  row["comment"],
			Disabled: parseBool(row["disabled"]),
		}
	})
}

func ParsePPPoESessions(rows []Row) []PPPoESession {
	return lo.Map(rows, func(row Row, _ int) PPPoESession {
		return PPPoESession{
			ID:       row[".id"],
			Name:     row["name"],
			Address:  row["address"],
			CallerID: row["caller-id"],
			Uptime:   row["uptime"],
			Service:  row["service"],
		}
	})
}

// RouterOS reports booleans as "true"/"false", older versions as "yes"/"no".
func parseBool(value string) bool {
	return value == "true" || value == "yes"
}

// FormatBool returns the RouterOS API form of a boolean.
func FormatBool(value bool) string {
	if value {
		return "yes"
	}

	return "no"
}
