package stats

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/bookmark/internal/session"
)

// Deleter removes sessions permanently.
type Deleter interface {
	DeleteSessions(sessions []session.ReadingSession) error
}

// Delete lists the sessions and removes them from the store once the user
// confirms by pressing ENTER on in.
func Delete(
	out io.Writer,
	in io.Reader,
	db Deleter,
	sessions []session.ReadingSession,
) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	List(out, sessions)

	warning := pterm.Warning.Sprint(
		"The above sessions will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(out, warning)

	reader := bufio.NewReader(in)

	_, _ = reader.ReadString('\n')

	return db.DeleteSessions(sessions)
}
