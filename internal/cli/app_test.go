package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/adatasks/internal/common"
	"github.com/dmitrijs2005/adatasks/internal/logging"
	"github.com/dmitrijs2005/adatasks/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_AccountFlow(t *testing.T) {
	f := newFixture(t, nil)
	out := run(t, f, strings.Join([]string{
		"whoami",
		"register", "ana@example.com", "secret", "Ana Souza",
		"register", "ANA@example.com", "x", "Dup",
		"login", "ana@example.com", "wrong",
		"login", "Ana@Example.com", "secret",
		"whoami",
		"forgot", "nobody@example.com",
		"forgot",
		"ana@example.com",
		"logout",
		"whoami",
		"exit",
	}, "\n"))

	assert.Contains(t, out, "Not logged in.")
	assert.Contains(t, out, services.MsgRegistered)
	assert.Contains(t, out, common.ErrDuplicateEmail.Error())
	assert.Contains(t, out, common.ErrInvalidPassword.Error())
	assert.Contains(t, out, services.MsgLoggedIn)
	assert.Contains(t, out, "ana@example.com (since ")
	assert.Contains(t, out, "ada [ana@example.com @ Trabalho] > ")
	assert.Contains(t, out, common.ErrEmailNotFound.Error())
	assert.Contains(t, out, services.MsgRecoverySent)
	assert.Contains(t, out, services.MsgLoggedOut)
	assert.Equal(t, 2, strings.Count(out, "Not logged in."))
	assert.Len(t, f.auth.Users(), 1)
}

func TestApp_ListsFlow(t *testing.T) {
	f := newFixture(t, nil)
	out := run(t, f, strings.Join([]string{
		"newlist",
		"Café com Leite",
		"☕",
		"newlist",
		"   ",
		"rmlist trabalho",
		"rmlist nope",
		"use nope",
		"use estudos",
		"lists",
		"quit",
	}, "\n"))

	assert.Contains(t, out, services.MsgListCreated)
	assert.Contains(t, out, "id: cafe-com-leite_")
	assert.Contains(t, out, common.ErrEmptyName.Error())
	assert.Contains(t, out, common.ErrProtectedList.Error())
	assert.Contains(t, out, common.ErrListNotFound.Error())
	assert.Contains(t, out, services.MsgListSelected)
	assert.Contains(t, out, "* 📚 Estudos")
	assert.Equal(t, "estudos", f.tasks.CurrentListID())

	lists := f.tasks.AllLists()
	require.Len(t, lists, 4)
	assert.Equal(t, "☕", lists[3].Icon)

	out = run(t, f, fmt.Sprintf("rmlist %s\nquit\n", lists[3].ID))
	assert.Contains(t, out, services.MsgListRemoved)
	assert.Len(t, f.tasks.AllLists(), 3)
}

func TestApp_TasksFlow(t *testing.T) {
	f := newFixture(t, nil)
	first := testNow.UnixMilli()

	out := run(t, f, strings.Join([]string{
		"tasks",
		"add Comprar leite",
		"add",
		"Ligar para o banco",
		"high",
		"add",
		"Sem prioridade",
		"urgent",
		"add",
		"",
		"",
		fmt.Sprintf("toggle %d", first),
		"toggle abc",
		"toggle 1",
		"rm",
		"pending",
		"done",
		"stats",
		"clear",
		fmt.Sprintf("rm %d", first+1),
		"tasks",
		"quit",
	}, "\n"))

	assert.Contains(t, out, "No tasks.")
	assert.Contains(t, out, services.MsgTaskAdded)
	assert.Contains(t, out, fmt.Sprintf("id: %d", first+1))
	assert.Contains(t, out, common.ErrInvalidPriority.Error())
	assert.Contains(t, out, common.ErrEmptyTitle.Error())
	assert.Contains(t, out, services.MsgTaskToggled)
	assert.Contains(t, out, `invalid task id "abc"`)
	assert.Contains(t, out, common.ErrTaskNotFound.Error())
	assert.Contains(t, out, "usage: <command> <task id>")
	assert.Contains(t, out, fmt.Sprintf("%d  [ ] Ligar para o banco (high)", first+1))
	assert.Contains(t, out, fmt.Sprintf("%d  [x] Comprar leite (medium)", first))
	assert.Contains(t, out, "Trabalho             total   2  completed   1  pending   1")
	assert.Contains(t, out, "1 completed task(s) removed!")
	assert.Contains(t, out, services.MsgTaskRemoved)
	assert.Empty(t, f.tasks.AllTasksGlobal())
}

func TestApp_Cleanup(t *testing.T) {
	f := newFixture(t, nil)
	out := run(t, f, "cleanup\nquit\n")
	assert.Contains(t, out, services.MsgNothingToClean)
}

func TestApp_Report(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.tasks.AddTask(context.Background(), "Revisar relatório", "high")
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "out.pdf")

	out := run(t, f, "report "+path+"\nquit\n")
	assert.Contains(t, out, "Report written to "+path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))

	nested := filepath.Join(t.TempDir(), "reports", "may.pdf")
	out = run(t, f, "report "+nested+"\nquit\n")
	assert.Contains(t, out, "Report written to "+nested)
	assert.FileExists(t, nested)

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
	out = run(t, f, "report "+filepath.Join(blocker, "x.pdf")+"\nquit\n")
	assert.Contains(t, out, "error: ")
}

type fakeBackup struct {
	key       string
	exportErr error
	imported  []string
}

func (b *fakeBackup) Export(context.Context) (string, error) { return b.key, b.exportErr }
func (b *fakeBackup) Import(_ context.Context, key string) error {
	b.imported = append(b.imported, key)
	return nil
}

func TestApp_BackupCommands(t *testing.T) {
	f := newFixture(t, nil)

	out := run(t, f, "backup\nquit\n")
	assert.Contains(t, out, "Unknown command: backup", "disabled without WithBackup")

	b := &fakeBackup{key: "backups/2024/05/01/abc.json"}
	reloaded := 0
	reload := func(ctx context.Context) (AuthService, TaskService, error) {
		reloaded++
		return f.auth, f.tasks, nil
	}

	out = run(t, f, "backup\nrestore backups/2024/05/01/abc.json\nquit\n", WithBackup(b, reload))
	assert.Contains(t, out, "Backup stored as backups/2024/05/01/abc.json")
	assert.Contains(t, out, "Restored backups/2024/05/01/abc.json")
	assert.Equal(t, []string{"backups/2024/05/01/abc.json"}, b.imported)
	assert.Equal(t, 1, reloaded)

	b.exportErr = errors.New("bucket missing")
	out = run(t, f, "backup\nquit\n", WithBackup(b, reload))
	assert.Contains(t, out, "error: bucket missing")
}

func TestApp_CloseWaitsAndRefusesCommands(t *testing.T) {
	noTerminal(t)
	f := newFixture(t, nil)
	var out bytes.Buffer
	app := NewApp(f.auth, f.tasks, logging.NewNop(), WithIO(strings.NewReader("add Comprar pão\nquit\n"), &out))

	app.mu.Lock()
	closed := make(chan struct{})
	go func() {
		app.Close()
		close(closed)
	}()
	select {
	case <-closed:
		t.Fatal("Close returned while a command held the lock")
	case <-time.After(50 * time.Millisecond):
	}
	app.mu.Unlock()
	<-closed

	app.Run(context.Background())
	assert.Contains(t, out.String(), "error: shutting down")
	assert.Empty(t, f.tasks.AllTasksGlobal())
}
