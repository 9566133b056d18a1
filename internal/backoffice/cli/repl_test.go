package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Register(ctx context.Context) error       { return f.record("register") }
func (f *fakeExec) ListUsers(ctx context.Context) error      { return f.record("users") }
func (f *fakeExec) SearchUsers(ctx context.Context) error    { return f.record("search") }
func (f *fakeExec) Activate(ctx context.Context) error       { return f.record("activate") }
func (f *fakeExec) Deactivate(ctx context.Context) error     { return f.record("deactivate") }
func (f *fakeExec) ListRequests(ctx context.Context) error   { return f.record("requests") }
func (f *fakeExec) SubmitRequest(ctx context.Context) error  { return f.record("submit") }
func (f *fakeExec) Approve(ctx context.Context) error        { return f.record("approve") }
func (f *fakeExec) Reject(ctx context.Context) error         { return f.record("reject") }
func (f *fakeExec) SearchSellers(ctx context.Context) error  { return f.record("sellers") }
func (f *fakeExec) FindIdentities(ctx context.Context) error { return f.record("find") }
func (f *fakeExec) ResetPassword(ctx context.Context) error  { return f.record("resetpass") }
func (f *fakeExec) EditIdentity(ctx context.Context) error   { return f.record("edit") }
func (f *fakeExec) ShowProfile(ctx context.Context) error    { return f.record("profile") }
func (f *fakeExec) SaveProfile(ctx context.Context) error    { return f.record("saveprofile") }
func (f *fakeExec) ListOrders(ctx context.Context) error     { return f.record("orders") }
func (f *fakeExec) ShowStats(ctx context.Context) error      { return f.record("stats") }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"users",
		"search",
		"requests",
		"approve",
		"orders",
		"stats",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "users", "search", "requests", "approve", "orders", "stats"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_SignedOutGating(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("users\nresetpass\nquit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_Aliases(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("u\nr\no\nlogout\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := []string{"users", "requests", "orders", "logout"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
		}
	}
}
