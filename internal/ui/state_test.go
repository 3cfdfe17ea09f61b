package ui

import "testing"

func TestReduce(t *testing.T) {
	tests := []struct {
		name       string
		start      State
		actions    []Action
		want       State
		wantCommit bool
	}{
		{name: "tap commits", start: State{Value: 1}, actions: []Action{Tap{Index: 3}}, want: State{Value: 3}, wantCommit: true},
		{name: "tap on same index still commits", start: State{Value: 2}, actions: []Action{Tap{Index: 2}}, want: State{Value: 2}, wantCommit: true},
		{name: "drag move is provisional", start: State{Value: 0}, actions: []Action{DragMove{Index: 2}}, want: State{Value: 0, Pending: 2, Dragging: true}},
		{name: "drag release commits last move", start: State{}, actions: []Action{DragMove{Index: 1}, DragMove{Index: 4}, DragRelease{}}, want: State{Value: 4}, wantCommit: true},
		{name: "release without drag is ignored", start: State{Value: 2}, actions: []Action{DragRelease{}}, want: State{Value: 2}},
		{name: "sync does not commit", start: State{Value: 1}, actions: []Action{Sync{Value: 5}}, want: State{Value: 5}},
		{name: "sync cancels drag", start: State{}, actions: []Action{DragMove{Index: 3}, Sync{Value: 1}}, want: State{Value: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			var commit bool
			for _, a := range tt.actions {
				s, commit = Reduce(s, a)
			}
			if s != tt.want {
				t.Fatalf("state = %+v, want %+v", s, tt.want)
			}
			if commit != tt.wantCommit {
				t.Fatalf("commit = %v, want %v", commit, tt.wantCommit)
			}
		})
	}
}

func TestStateDisplayed(t *testing.T) {
	if got := (State{Value: 1, Pending: 3, Dragging: true}).Displayed(); got != 3 {
		t.Fatalf("Displayed while dragging = %d, want 3", got)
	}
	if got := (State{Value: 1, Pending: 3}).Displayed(); got != 1 {
		t.Fatalf("Displayed = %d, want 1", got)
	}
}
