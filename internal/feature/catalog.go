package feature

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jask/blanktech/internal/placeholder"
	"github.com/jask/blanktech/internal/theme"
)

const (
	nitroCodes    = 50
	tokenAttempts = 100
	bulkRuns      = 200
	standardRuns  = 100
	listedEmails  = 20
	scannedHosts  = 20
)

var (
	scanPorts = []int{21, 22, 23, 25, 53, 80, 110, 143, 443, 3306, 8080}

	lookupPlatforms = []string{
		"Email", "Facebook", "Twitter", "Instagram", "PayPal", "BankAccount",
		"Xbox", "Steam", "Netflix", "Amazon", "GitHub", "LinkedIn", "Reddit",
	}

	phishingPlatforms = []string{
		"Snapchat", "Instagram", "Facebook", "Twitter", "TikTok", "LinkedIn",
		"Gmail", "Yahoo Mail", "Outlook", "Netflix", "Spotify", "Amazon",
		"Steam", "Roblox", "Xbox Live", "PayPal", "GitHub", "Reddit",
		"Discord", "Pinterest",
	}

	payloadModules = []struct{ option, module string }{
		{"Discord Token Stealer", "DiscordTokenStealer-MOCK"},
		{"Browser Stealer", "BrowserCredentialGrabber-MOCK"},
		{"Discord Injection", "DiscordInjectionStub-MOCK"},
		{"Roblox Cookie Stealer", "RobloxCookieGrabber-MOCK"},
		{"Keyboard Blocker", "KeyboardBlocker-MOCK"},
		{"Mouse Blocker", "MouseBlocker-MOCK"},
		{"Task Manager Blocker", "TaskMgrBlocker-MOCK"},
		{"Shutdown Trigger", "ShutdownTrigger-MOCK"},
		{"Spam Window Opener", "SpamWindow-MOCK"},
	}

	buildSteps = []string{
		"Initializing build environment...",
		"Loading dependencies...",
		"Compiling resources...",
		"Injecting simulation modules...",
		"Encrypting mock binary...",
		"Finalizing payload structure...",
		"Performing integrity check...",
		"Saving fake executable...",
	}
)

func success(format string, a ...any) Line { return Line{fmt.Sprintf(format, a...), theme.Success} }
func failure(format string, a ...any) Line { return Line{fmt.Sprintf(format, a...), theme.Failure} }
func warning(format string, a ...any) Line { return Line{fmt.Sprintf(format, a...), theme.Warning} }
func info(format string, a ...any) Line    { return Line{fmt.Sprintf(format, a...), theme.Info} }

func repeat(n int, line func(i int) Line) []Line {
	lines := make([]Line, n)
	for i := range lines {
		lines[i] = line(i)
	}
	return lines
}

func static(lines ...Line) func(*Session) []Line {
	return func(*Session) []Line { return lines }
}

// Catalog returns every menu entry in menu order.
func Catalog(settings Settings) []Entry {
	routines := map[ID]*Routine{
		DDoSAttack:         ddosAttack(),
		EmailCreator:       emailCreator(),
		PortScanner:        portScanner(),
		NitroCodeGenerator: nitroGenerator(),
		TokenStealer:       tokenStealer(),
		WebsiteDDoS:        websiteDDoS(),
		EmailCracker:       emailCracker(),
		IPLookup:           ipLookup(),
		WifiCracker:        wifiCracker(),
		Bypasser:           bypasser(),
		VirusBuilder:       virusBuilder(),
		FollowBot:          followBot(settings.UnlockCode),
		MassReport:         massReport(settings.UnlockCode),
		EmailBomber:        emailBomber(),
		VPNConnect:         vpnConnect(),
		VPNBypasser:        vpnBypasser(),
		IPv4Bypasser:       ipv4Bypasser(),
		MessageReactor:     messageReactor(),
		BotNetMaker:        botNetMaker(settings.UnlockCode),
		PhishingMockUI:     phishingMockUI(),
	}
	entries := make([]Entry, 0, Count)
	for _, id := range All() {
		entries = append(entries, Entry{ID: id, Handler: routines[id]})
	}
	return entries
}

func unlockHint(prefix, code, suffix string) string {
	if code == "" {
		return prefix
	}
	return prefix + " " + fmt.Sprintf(suffix, code)
}

// ---------------------------------------------------------------------------
// 1-10
// ---------------------------------------------------------------------------

func ddosAttack() *Routine {
	return &Routine{
		Title:   "DDoS Attack",
		Rows:    []Row{Text("Enter target identifier")},
		Prompts: []Prompt{{Key: "target", Label: "Target", Exit: ExitOnBack, Check: held(required("No target entered. Press B to go back or enter a target."))}},
		Intro:   func(s *Session) Line { return warning("Preparing attack to %s...", s.Value("target")) },
		Progress: func(s *Session) []Line {
			return repeat(bulkRuns, func(i int) Line { return success("[%03d] Attack Sent to %s", i+1, s.Value("target")) })
		},
		Summary: static(info("\nDone. This was a completed DDoS attack.")),
	}
}

func confirmPrompt(label, action string) Prompt {
	return Prompt{
		Key:   "confirm",
		Label: label,
		Exit:  ExitOnBack,
		Lower: true,
		Check: confirmed(fmt.Sprintf("Please enter 'Y' to %s or 'B' to go back.", action)),
	}
}

func emailCreator() *Routine {
	return &Routine{
		Title:   "Email Creator",
		Rows:    []Row{Text(fmt.Sprintf("Generates %d emails.", listedEmails))},
		Prompts: []Prompt{confirmPrompt("Generate? (Y/B)", "generate")},
		Intro:   func(*Session) Line { return Line{} },
		Progress: func(s *Session) []Line {
			return repeat(listedEmails, func(i int) Line { return success("%02d. %s", i+1, s.Gen.Email()) })
		},
		Summary: static(info("\n%d emails generated.", listedEmails)),
	}
}

func portScanner() *Routine {
	return &Routine{
		Title:   "Port Scanner",
		Rows:    []Row{Text(fmt.Sprintf("Displays %d IP addresses.", scannedHosts))},
		Prompts: []Prompt{confirmPrompt("Scan? (Y/B)", "scan")},
		Intro:   func(*Session) Line { return Line{} },
		Progress: func(s *Session) []Line {
			return repeat(scannedHosts, func(i int) Line {
				ip := s.Gen.IPv4()
				open := placeholder.Sample(s.Gen, scanPorts, s.Gen.Between(0, 3))
				ports := "none"
				if len(open) > 0 {
					parts := make([]string, len(open))
					for j, p := range open {
						parts[j] = strconv.Itoa(p)
					}
					ports = strings.Join(parts, ", ")
				}
				return success("%02d. %s - Open Ports: %s", i+1, ip, ports)
			})
		},
		Summary: static(info("\nScan complete.")),
	}
}

func nitroGenerator() *Routine {
	return &Routine{
		Title:   "Nitro Code Generator",
		Rows:    []Row{Text(fmt.Sprintf("Generates %d 16-character codes.", nitroCodes))},
		Prompts: []Prompt{confirmPrompt("Generate? (Y/B)", "generate")},
		Progress: func(s *Session) []Line {
			return repeat(nitroCodes, func(i int) Line {
				code := s.Gen.Code(16)
				if i < nitroCodes-1 {
					return failure("Nitro Code Failed (%s)", code)
				}
				return success("Nitro Code Success (%s)", code)
			})
		},
		Summary: static(info("\nDone: %d failed + 1 success.", nitroCodes-1)),
	}
}

func tokenStealer() *Routine {
	return &Routine{
		Title:   "Discord Bot Token Stealer",
		Rows:    []Row{Text("Type bot name to attack.")},
		Prompts: []Prompt{{Key: "bot", Label: "Bot name", Exit: ExitOnBack, Check: required("Enter a bot name or B to go back.")}},
		Intro:   func(s *Session) Line { return warning("Starting token attack against '%s' (simulation)...", s.Value("bot")) },
		Progress: func(s *Session) []Line {
			return repeat(tokenAttempts, func(i int) Line {
				token := s.Gen.Token()
				if i < tokenAttempts-1 {
					return failure("[%03d] Token Attack Failed (%s)", i+1, token)
				}
				return success("[%03d] Token Attack Successful (%s)", i+1, token)
			})
		},
		Summary: static(info("\nNote: All tokens above should be used legally.")),
	}
}

func websiteDDoS() *Routine {
	return &Routine{
		Title: "Website DDoS",
		Rows:  []Row{Text("Paste the URL (http/https).")},
		Prompts: []Prompt{{
			Key:   "url",
			Label: "URL",
			Exit:  ExitOnBack,
			Check: checks(
				required("No URL entered. Press B to go back or enter a URL."),
				held(webURL("Please include http:// or https:// at the start of the URL.")),
			),
		}},
		Intro: func(s *Session) Line { return warning("Simulating sending %d attacks to %s...", bulkRuns, s.Value("url")) },
		Progress: func(s *Session) []Line {
			return repeat(bulkRuns, func(i int) Line { return success("[%03d] Sending Attack To %s", i+1, s.Value("url")) })
		},
		Summary: static(info("\nDone. This was an online DDoS website attack.")),
	}
}

func emailCracker() *Routine {
	return &Routine{
		Title:   "Email Cracker",
		Rows:    []Row{Text("Type the target email and press Enter")},
		Prompts: []Prompt{{Key: "email", Label: "Email", Exit: ExitOnBack, Check: emailLike("Please enter a valid-looking email address or B to go back.")}},
		Intro:   func(s *Session) Line { return warning("Simulating stealing database of %s...", s.Value("email")) },
		Progress: func(s *Session) []Line {
			return repeat(standardRuns, func(i int) Line { return success("[%03d] Stealing DataBase Of %s", i+1, s.Value("email")) })
		},
		Summary: func(s *Session) []Line {
			return []Line{
				info("\nFound Results:"),
				success("Recovered phone: %s", s.Gen.Phone()),
				success("Recovered password: %s", s.Gen.Password(10)),
			}
		},
	}
}

func ipLookup() *Routine {
	return &Routine{
		Title:   "IP Lookup",
		Rows:    []Row{Text("Type an IPv4 address (120.34.43.7).")},
		Prompts: []Prompt{{Key: "ip", Label: "IP", Exit: ExitOnBack, Check: ipv4Like("Please enter a valid-looking IPv4 address or B to go back.")}},
		Intro:   func(s *Session) Line { return warning("Preparing lookup for %s and generating account data...", s.Value("ip")) },
		Progress: func(s *Session) []Line {
			g := s.Gen
			lines := make([]Line, 0, len(lookupPlatforms)+13)
			for _, p := range lookupPlatforms {
				lines = append(lines, success("%s -> Username: %s | Password: %s", p, g.Username(), g.Password(g.Between(8, 14))))
			}
			lines = append(lines,
				success("Phone -> %s", g.Phone()),
				success("PayPal Password -> %s", g.Password(12)),
				success("Bank Account -> Acc:%s | PIN:%s", g.BankAccount(), g.PIN(4)),
			)
			for i := 1; i <= 10; i++ {
				lines = append(lines, success("OtherPlatform%d -> Username: %s | Password: %s", i, g.Username(), g.Password(9)))
			}
			return lines
		},
		Summary: static(info("\nNote: All data above should not be used to harm anyone.")),
	}
}

func wifiCracker() *Routine {
	return &Routine{
		Title:   "Wi-Fi Password Cracker",
		Rows:    []Row{Text("Enter Wi-Fi SSID")},
		Prompts: []Prompt{{Key: "ssid", Label: "Wi-Fi SSID", Exit: ExitOnBack, Check: required("Please enter an SSID or B to go back.")}},
		Intro:   func(s *Session) Line { return warning("Starting cracking for '%s'...", s.Value("ssid")) },
		Progress: func(*Session) []Line {
			return repeat(standardRuns, func(i int) Line { return success("[%03d] Cracking Wifi Database", i+1) })
		},
		Summary: func(s *Session) []Line {
			return []Line{
				info("\nCrack complete. SSID: %s", s.Value("ssid")),
				success("Found network owner: %s", s.Gen.Username()),
				success("Found network password: %s", s.Gen.Password(12)),
			}
		},
	}
}

func bypasser() *Routine {
	return &Routine{
		Title:   "Bypasser",
		Rows:    []Row{Text("Enter the URL you want to bypass.")},
		Prompts: []Prompt{{Key: "url", Label: "URL", Exit: ExitOnBack, Check: webURL("Please enter a URL starting with http:// or https://, or B to go back.")}},
		Intro:   func(s *Session) Line { return warning("Simulating BotNet bypassing URL %s %d times...", s.Value("url"), standardRuns) },
		Progress: func(s *Session) []Line {
			return repeat(standardRuns, func(i int) Line { return success("[%03d] BotNet Bypassing URL %s", i+1, s.Value("url")) })
		},
		Summary: static(info("\nDone. This was a BotNet bypass, use them correctly and legally.")),
	}
}

// ---------------------------------------------------------------------------
// 11-20
// ---------------------------------------------------------------------------

func virusBuilder() *Routine {
	rows := []Row{Text("Stealer Options:")}
	for i, m := range payloadModules {
		if i == 4 {
			rows = append(rows, BlankRow, Text("Malware Options:"))
		}
		rows = append(rows, Text(fmt.Sprintf(" %d. %s (FAKE)", i+1, m.option)))
	}
	rows = append(rows, BlankRow, Text("Press 1-9 to build a fake payload, or B to go back."))

	return &Routine{
		Title: "Virus Builder - SIMULATION ONLY",
		Rows:  rows,
		Prompts: []Prompt{{
			Key:   "option",
			Label: "Select option (1-9) or B",
			Exit:  ExitOnBack,
			Check: choice(1, len(payloadModules), reject("Invalid option - choose 1-9 or B.")),
		}},
		Intro: func(s *Session) Line { return info("Building simulated payload: %s", payloadModule(s.Value("option"))) },
		Progress: func(*Session) []Line {
			return repeat(len(buildSteps), func(i int) Line { return success("[%02d] %s", i+1, buildSteps[i]) })
		},
		Summary: func(s *Session) []Line {
			return []Line{
				success("\nFake build complete: payload_%d.exe", s.Gen.Between(1000, 9999)),
				info("Reminder: This is a harmless visual demo only."),
			}
		},
	}
}

func payloadModule(option string) string {
	n, err := strconv.Atoi(option)
	if err != nil || n < 1 || n > len(payloadModules) {
		return "Unknown-Module"
	}
	return payloadModules[n-1].module
}

func followBot(code string) *Routine {
	return &Routine{
		Title:   "TikTok Follow Bot",
		Rows:    []Row{Text(unlockHint("Username + optional unlock code", code, "(%s unlocks 1000)"))},
		Prompts: []Prompt{{Key: "user", Label: "Username", Exit: ExitOnBackOrEmpty}},
		Bound:   &Bound{Default: 200, Extended: 1000, Announce: "Max followers allowed", Amount: "Amount to send"},
		Intro: func(s *Session) Line {
			return warning("Simulating sending %d bot followers to @%s...", s.Amount, s.Value("user"))
		},
		Progress: func(s *Session) []Line {
			return repeat(s.Amount, func(i int) Line { return success("[%03d] Bot Follower sent to @%s", i+1, s.Value("user")) })
		},
		Summary: static(info("\nOperation complete.")),
	}
}

func massReport(code string) *Routine {
	return &Routine{
		Title: "Mass Report",
		Rows:  []Row{Text(unlockHint("Platform + username.", code, "Code %s extends the range"))},
		Prompts: []Prompt{
			{Key: "platform", Label: "Platform", Exit: ExitOnBackOrEmpty},
			{Key: "user", Label: "Username (without @)", TrimLeft: "@"},
		},
		Bound: &Bound{Default: 200, Extended: 1000, Announce: "Max reports allowed", Amount: "Amount to send"},
		Intro: func(s *Session) Line {
			return warning("Simulating reporting @%s on %s %d times...", s.Value("user"), s.Value("platform"), s.Amount)
		},
		Progress: func(s *Session) []Line {
			return repeat(s.Amount, func(i int) Line {
				return success("[%03d] Reported @%s from %s", i+1, s.Value("user"), s.Value("platform"))
			})
		},
		Summary: static(info("\nOperation complete.")),
	}
}

func emailBomber() *Routine {
	return &Routine{
		Title:   "Email Bomber",
		Rows:    []Row{Text("Enter target email to bomb")},
		Prompts: []Prompt{{Key: "email", Label: "Email", Exit: ExitOnBackOrEmpty}},
		Intro:   func(s *Session) Line { return warning("BotNet attack sending %d mails to %s...", bulkRuns, s.Value("email")) },
		Progress: func(s *Session) []Line {
			return repeat(bulkRuns, func(i int) Line { return success("[%03d] Bomb attacking %s", i+1, s.Value("email")) })
		},
		Summary: static(info("\nOperation complete.")),
	}
}

func vpnConnect() *Routine {
	return &Routine{
		Title: "VPN Connect",
		Rows:  []Row{Text("Enter country and optional site")},
		Prompts: []Prompt{
			{Key: "country", Label: "Country", Exit: ExitOnBackOrEmpty},
			{Key: "site", Label: "Site to access (optional)"},
		},
		Intro: func(s *Session) Line { return warning("Simulating connection to VPN server for %s...", s.Value("country")) },
		Progress: func(s *Session) []Line {
			return repeat(standardRuns, func(i int) Line { return success("[%03d] Connecting VPN server (%s)", i+1, s.Value("country")) })
		},
		Summary: func(s *Session) []Line {
			lines := []Line{info("\nConnected to %s via %s (SIMULATION).", s.Value("country"), s.Gen.IPv4())}
			if site := s.Value("site"); site != "" {
				lines = append(lines, info("Target site path: %s.", site))
			}
			return lines
		},
	}
}

func vpnBypasser() *Routine {
	return &Routine{
		Title:   "VPN Bypasser",
		Rows:    []Row{Text("Enter VPN IP to pass")},
		Prompts: []Prompt{{Key: "ip", Label: "VPN IP", Exit: ExitOnBackOrEmpty}},
		Intro:   func(s *Session) Line { return warning("Preparing breaking VPN system for %s...", s.Value("ip")) },
		Progress: func(*Session) []Line {
			return repeat(standardRuns, func(i int) Line { return success("[%03d] Breaking VPN system", i+1) })
		},
		Summary: func(s *Session) []Line {
			return []Line{info("\nOperation result: Generated fallback IP: %s", s.Gen.IPv4())}
		},
	}
}

func ipv4Bypasser() *Routine {
	return &Routine{
		Title:   "IPv4 Bypasser",
		Rows:    []Row{Text("Enter IPv4 to gateway")},
		Prompts: []Prompt{{Key: "ip", Label: "IPv4", Exit: ExitOnBackOrEmpty}},
		Intro:   func(s *Session) Line { return warning("Preparing IPv4 bypass for %s...", s.Value("ip")) },
		Progress: func(*Session) []Line {
			return repeat(standardRuns, func(i int) Line { return success("[%03d] Breaking IPv4 gateway", i+1) })
		},
		Summary: func(s *Session) []Line {
			return []Line{info("\nOperation completed. IP: %s", s.Gen.IPv4())}
		},
	}
}

func messageReactor() *Routine {
	return &Routine{
		Title: "Message Reactor",
		Rows:  []Row{Text("Enter message ID and emoji short-code")},
		Prompts: []Prompt{
			{Key: "message", Label: "Message ID", Exit: ExitOnBackOrEmpty},
			{Key: "emoji", Label: "Emoji short-code (e.g. :skull:)"},
		},
		Intro: func(s *Session) Line {
			return warning("Bots sending reactions %s to message %s...", s.Value("emoji"), s.Value("message"))
		},
		Progress: func(s *Session) []Line {
			return repeat(standardRuns, func(i int) Line {
				return success("[%03d] Sending Reacts to %s -> %s", i+1, s.Value("message"), s.Value("emoji"))
			})
		},
		Summary: static(info("\nOperation complete.")),
	}
}

func botNetMaker(code string) *Routine {
	return &Routine{
		Title:   "BotNet Maker",
		Rows:    []Row{Text(unlockHint("Target + optional unlock code", code, "(%s) for more agents"))},
		Prompts: []Prompt{{Key: "target", Label: "Target", Exit: ExitOnBackOrEmpty}},
		Bound:   &Bound{Default: 100, Extended: 1000, Amount: "Amount to simulate"},
		Intro: func(s *Session) Line {
			return warning("Simulating activation of %d botnet agents for %s...", s.Amount, s.Value("target"))
		},
		Progress: func(s *Session) []Line {
			return repeat(s.Amount, func(i int) Line {
				return success("[%03d] BotNet is active (ID-%d)", i+1, s.Gen.Between(10000, 99999))
			})
		},
		Summary: static(info("\nOperation complete.")),
	}
}

func phishingMockUI() *Routine {
	rows := []Row{Text("Select platform number to show a harmless credential demo"), BlankRow}
	half := len(phishingPlatforms) / 2
	for i := 0; i < half; i++ {
		rows = append(rows, Pair(
			fmt.Sprintf("%d. %s", i+1, phishingPlatforms[i]),
			fmt.Sprintf("%d. %s", i+1+half, phishingPlatforms[i+half]),
		))
	}
	rows = append(rows, BlankRow, Text("Enter number or B to go back"))

	platform := func(s *Session) string {
		n, _ := strconv.Atoi(s.Value("platform"))
		return phishingPlatforms[n-1]
	}

	return &Routine{
		Title: "Phishing Mock UI",
		Rows:  rows,
		Prompts: []Prompt{
			{
				Key:   "platform",
				Label: "Select a platform number",
				Exit:  ExitOnBack,
				Check: choice(1, len(phishingPlatforms), rejectHard("Invalid selection.")),
			},
			{
				Key:      "user",
				LabelFor: func(s *Session) string { return "Enter username for " + platform(s) },
				Check:    required("No username entered."),
			},
		},
		Intro: func(s *Session) Line {
			return warning("Preparing credential lookup for %s on %s...", s.Value("user"), platform(s))
		},
		Progress: func(*Session) []Line {
			return repeat(6, func(i int) Line { return success("[%02d] Querying mock database...", i+1) })
		},
		Summary: func(s *Session) []Line {
			return []Line{
				info("\nFOUND RECOVERED DATA (placeholders):"),
				success("Username: %s", s.Value("user")),
				success("Password: %s", s.Gen.Password(10)),
				success("Email linked: %s", s.Gen.Email("example.com")),
				success("Phone: %s", s.Gen.Phone()),
			}
		},
	}
}
