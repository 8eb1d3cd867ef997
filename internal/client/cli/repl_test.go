package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) ListEvents(ctx context.Context) error    { return f.record("events") }
func (f *fakeExec) AddEvent(ctx context.Context) error      { return f.record("addevent") }
func (f *fakeExec) EditEvent(ctx context.Context) error     { return f.record("editevent") }
func (f *fakeExec) DeleteEvent(ctx context.Context) error   { return f.record("delevent") }
func (f *fakeExec) ListFriends(ctx context.Context) error   { return f.record("friends") }
func (f *fakeExec) AddFriend(ctx context.Context) error     { return f.record("addfriend") }
func (f *fakeExec) DeleteFriend(ctx context.Context) error  { return f.record("delfriend") }
func (f *fakeExec) ShareFriends(ctx context.Context) error  { return f.record("share") }
func (f *fakeExec) ImportFriends(ctx context.Context) error { return f.record("import") }
func (f *fakeExec) SubscribeLink(ctx context.Context) error { return f.record("sublink") }
func (f *fakeExec) Preview(ctx context.Context) error       { return f.record("preview") }
func (f *fakeExec) Send(ctx context.Context) error          { return f.record("send") }
func (f *fakeExec) Settings(ctx context.Context) error      { return f.record("settings") }
func (f *fakeExec) Backup(ctx context.Context) error        { return f.record("backup") }
func (f *fakeExec) Restore(ctx context.Context) error       { return f.record("restore") }
func (f *fakeExec) ExportICS(ctx context.Context) error     { return f.record("ics") }

func TestRunREPL_CommandDispatch(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"addevent",
		"events",
		"addfriend",
		"friends",
		"preview",
		"send",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	want := []string{"addevent", "events", "addfriend", "friends", "preview", "send"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d: got %q, want %q", i, exec.calls[i], want[i])
		}
	}
}

func TestRunREPL_QuitAndBlankLines(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n\nquit\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("events\n")
	exec := &fakeExec{}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	if len(exec.calls) != 1 || exec.calls[0] != "events" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
