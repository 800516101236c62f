// Package feature defines the menu entries and the routine each one runs.
package feature

import "strconv"

// ID identifies one menu entry. The zero value is not a feature.
type ID int

const (
	DDoSAttack ID = iota + 1
	EmailCreator
	PortScanner
	NitroCodeGenerator
	TokenStealer
	WebsiteDDoS
	EmailCracker
	IPLookup
	WifiCracker
	Bypasser
	VirusBuilder
	FollowBot
	MassReport
	EmailBomber
	VPNConnect
	VPNBypasser
	IPv4Bypasser
	MessageReactor
	BotNetMaker
	PhishingMockUI
)

// Count is the number of menu entries.
const Count = int(PhishingMockUI)

var labels = [...]string{
	DDoSAttack:         "DDoS Attack",
	EmailCreator:       "Email Creator",
	PortScanner:        "Port Scanner",
	NitroCodeGenerator: "Nitro Code Generator",
	TokenStealer:       "Discord Bot Token Stealer",
	WebsiteDDoS:        "Website DDoS",
	EmailCracker:       "Email Cracker",
	IPLookup:           "IP Lookup",
	WifiCracker:        "Wi-Fi Password Cracker",
	Bypasser:           "Bypasser",
	VirusBuilder:       "Virus Builder",
	FollowBot:          "TikTok Follow Bot",
	MassReport:         "Mass Report",
	EmailBomber:        "Email Bomber",
	VPNConnect:         "VPN Connect",
	VPNBypasser:        "VPN Bypasser",
	IPv4Bypasser:       "IPv4 Bypasser",
	MessageReactor:     "Message Reactor",
	BotNetMaker:        "BotNet Maker",
	PhishingMockUI:     "Phishing Mock UI",
}

// Valid reports whether id names a menu entry.
func (id ID) Valid() bool { return id >= DDoSAttack && id <= PhishingMockUI }

// Key is the selection typed at the menu prompt.
func (id ID) Key() string { return strconv.Itoa(int(id)) }

// Label is the menu caption.
func (id ID) Label() string {
	if !id.Valid() {
		return "Feature " + id.Key()
	}
	return labels[id]
}

func (id ID) String() string { return id.Label() }

// ParseID maps a menu key such as "12" to its ID.
func ParseID(key string) (ID, bool) {
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	id := ID(n)
	if !id.Valid() || id.Key() != key {
		return 0, false
	}
	return id, true
}

// All returns every ID in menu order.
func All() []ID {
	ids := make([]ID, 0, Count)
	for id := DDoSAttack; id <= PhishingMockUI; id++ {
		ids = append(ids, id)
	}
	return ids
}
