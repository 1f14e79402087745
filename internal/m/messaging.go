//    CaseTopics
//    Copyright: Lexicon Labs 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package m

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"
)

//
// TERMINAL OUTPUT/MESSAGES
//

const (
	MSGMAND = -1
	MSGCRIT = 0
	MSGWARN = 1
	MSGNOTE = 2
	MSGFYI  = 3
	MSGPEEK = 4
	MSGTMI  = 5

	TIMETRACKERMSGTHRESH = MSGFYI

	RESET   = "\033[0m"
	BLINK   = "\033[30;0;5m"
	BLUE1   = "\033[38;5;38m"  // DeepSkyBlue2
	BLUE2   = "\033[38;5;68m"  // SteelBlue3
	CYAN2   = "\033[38;5;117m" // SkyBlue1
	GREEN   = "\033[38;5;70m"  // Chartreuse3
	RED1    = "\033[38;5;160m" // Red3
	YELLOW1 = "\033[38;5;178m" // Gold3
	YELLOW2 = "\033[38;5;143m" // DarkKhaki
	GREY3   = "\033[38;5;242m" // Grey42
	WHITE   = "\033[38;5;255m" // Grey93

	PANIC = "[%s%s v.%s%s] %sUNRECOVERABLE ERROR%s\n"
)

type LaunchStruct struct {
	Name       string
	Version    string
	Shortname  string
	LaunchTime time.Time
}

type MessageMaker struct {
	LogLevel      int
	BlackAndWhite bool
	Lnc           LaunchStruct
	Win           bool
}

func NewMessageMaker(loglevel int, bw bool, ls LaunchStruct) *MessageMaker {
	w := false
	if runtime.GOOS == "windows" {
		w = true
	}
	return &MessageMaker{
		LogLevel:      loglevel,
		BlackAndWhite: bw,
		Lnc:           ls,
		Win:           w,
	}
}

// Emit - send a message to the terminal, perhaps adding color and style to it
func (m *MessageMaker) Emit(message string, threshold int) {
	// sample output: "[CTS] vectorize() dropped 13441 high-frequency terms"

	if m.LogLevel < threshold {
		return
	}

	if !m.Win && !m.BlackAndWhite {
		var color string

		switch threshold {
		case MSGMAND:
			color = GREEN
		case MSGCRIT:
			color = RED1
		case MSGWARN:
			color = YELLOW2
		case MSGNOTE:
			color = YELLOW1
		case MSGFYI:
			color = CYAN2
		case MSGPEEK:
			color = BLUE2
		case MSGTMI:
			color = GREY3
		default:
			color = WHITE
		}
		fmt.Printf("[%s%s%s] %s%s%s\n", YELLOW1, m.Lnc.Shortname, RESET, color, message, RESET)
	} else {
		// terminal color codes not w's friend
		fmt.Printf("[%s] %s\n", m.Lnc.Shortname, message)
	}
}

func (m *MessageMaker) MAND(s string) { m.Emit(s, MSGMAND) }
func (m *MessageMaker) CRIT(s string) { m.Emit(s, MSGCRIT) }
func (m *MessageMaker) WARN(s string) { m.Emit(s, MSGWARN) }
func (m *MessageMaker) NOTE(s string) { m.Emit(s, MSGNOTE) }
func (m *MessageMaker) FYI(s string)  { m.Emit(s, MSGFYI) }
func (m *MessageMaker) PEEK(s string) { m.Emit(s, MSGPEEK) }
func (m *MessageMaker) TMI(s string)  { m.Emit(s, MSGTMI) }

// Color - colorize text via ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Color(tagged string) string {
	// "[seed: C4%dC0]" yields green text for the %d
	swap := strings.NewReplacer("C1", "", "C2", "", "C3", "", "C4", "", "C5", "", "C6", "", "C7", "", "C0", "")

	if !m.Win && !m.BlackAndWhite {
		swap = strings.NewReplacer("C1", YELLOW1, "C2", CYAN2, "C3", BLUE1, "C4", GREEN, "C5", RED1,
			"C6", GREY3, "C7", BLINK, "C0", RESET)
	}
	return swap.Replace(tagged)
}

// Styled - style text with ANSI codes by swapping out pseudo-tags
func (m *MessageMaker) Styled(tagged string) string {
	const (
		BOLD    = "\033[1m"
		ITAL    = "\033[3m"
		UNDER   = "\033[4m"
		REVERSE = "\033[7m"
		STRIKE  = "\033[9m"
	)
	swap := strings.NewReplacer("S1", "", "S2", "", "S3", "", "S4", "", "S5", "", "S0", "")

	if !m.Win && !m.BlackAndWhite {
		swap = strings.NewReplacer("S1", BOLD, "S2", ITAL, "S3", UNDER, "S4", STRIKE, "S5", REVERSE,
			"S0", RESET)
	}
	return swap.Replace(tagged)
}

func (m *MessageMaker) ColStyle(tagged string) string {
	return m.Styled(m.Color(tagged))
}

// EC - report an unrecoverable error and quit
func (m *MessageMaker) EC(err error) {
	if err != nil {
		fmt.Printf(PANIC, YELLOW2, m.Lnc.Name, m.Lnc.Version, RESET, RED1, RESET)
		fmt.Println(err)
		m.ExitOrHang(1)
	}
}

// ExitOrHang - Windows should hang to keep the error visible before the window closes and hides it
func (m *MessageMaker) ExitOrHang(e int) {
	const (
		HANG = `Execution suspended. %s is now frozen. Note any errors above. Execution will halt after %d seconds.`
		SUSP = 60
	)
	if !m.Win {
		os.Exit(e)
	} else {
		m.Emit(fmt.Sprintf(HANG, m.Lnc.Name, SUSP), MSGMAND)
		time.Sleep(SUSP * time.Second)
		os.Exit(e)
	}
}

// Timer - report how much time elapsed between A and B
func (m *MessageMaker) Timer(letter string, o string, start time.Time, previous time.Time) {
	// sample output: "[B1: 2.319s][Δ: 1.112s] 10000 documents vectorized"
	d := fmt.Sprintf("[Δ: %.3fs] ", time.Since(previous).Seconds())
	o = fmt.Sprintf("[%s: %.3fs]", letter, time.Since(start).Seconds()) + d + o
	m.Emit(o, TIMETRACKERMSGTHRESH)
}
