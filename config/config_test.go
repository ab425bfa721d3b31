package config

import "testing"

func TestArenaValidate(t *testing.T) {
	tests := []struct {
		name    string
		arena   ArenaConfig
		wantErr bool
	}{
		{"default arena", ArenaConfig{LeftWall: -450, RightWall: 450, BottomWall: -300, TopWall: 300, WallThickness: 10}, false},
		{"zero width", ArenaConfig{LeftWall: 100, RightWall: 100, BottomWall: -300, TopWall: 300}, true},
		{"inverted walls", ArenaConfig{LeftWall: 450, RightWall: -450, BottomWall: -300, TopWall: 300}, true},
		{"zero height", ArenaConfig{LeftWall: -450, RightWall: 450, BottomWall: 300, TopWall: 300}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.arena.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("expected an error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestPackagedConfigIsValid(t *testing.T) {
	if err := Arena.Validate(); err != nil {
		t.Fatalf("built-in arena config is invalid: %v", err)
	}
	if C.TickRate <= 0 || C.TimeStep <= 0 {
		t.Errorf("tick rate and time step must be positive, got %d and %v", C.TickRate, C.TimeStep)
	}
	if Paddle.Height+2*(Paddle.Padding+Arena.WallThickness) > Arena.Height() {
		t.Errorf("paddle travel range collapses: paddle does not fit between the walls")
	}
}
