package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs/component"
)

func TestCameraX(t *testing.T) {
	tests := []struct {
		name   string
		actorX float64
		want   float64
	}{
		{name: "clamped left", actorX: 50, want: 0},
		{name: "centred", actorX: 1000, want: 630},
		{name: "clamped right", actorX: 3180, want: 2400},
		{name: "past level end", actorX: 5000, want: 2400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CameraX(tt.actorX, 60, 800, 3200); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCameraSystemFollowsActor(t *testing.T) {
	w, a, _ := testWorld(t)
	a.X = 1500

	NewCameraSystem().Update(w)
	if cam := singleton(t, w, component.CameraComponent.Kind()); cam.X != 1130 {
		t.Fatalf("expected camera 1130, got %v", cam.X)
	}
}
