package cli

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// commands maps every REPL verb to its handler.
func (a *App) commands() map[string]handler {
	cmds := map[string]handler{
		"register": a.Register,
		"login":    a.Login,
		"logout":   a.Logout,
		"whoami":   a.WhoAmI,
		"forgot":   a.Forgot,

		"lists":   a.Lists,
		"newlist": a.NewList,
		"rmlist":  a.RemoveList,
		"use":     a.Use,

		"add":     a.Add,
		"tasks":   a.Tasks,
		"pending": a.Pending,
		"done":    a.Done,
		"toggle":  a.Toggle,
		"rm":      a.Remove,
		"clear":   a.Clear,

		"stats":   a.Stats,
		"cleanup": a.Cleanup,
		"report":  a.Report,
	}
	if a.backup != nil {
		cmds["backup"] = a.Backup
		cmds["restore"] = a.Restore
	}
	for name, h := range cmds {
		cmds[name] = a.locked(h)
	}
	return cmds
}
