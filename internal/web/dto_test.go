package web

import (
	"testing"
	"time"

	"github.com/padelclub/padelengine/internal/domain"

	"github.com/google/uuid"
)

func Test_createMatch_Validate(t *testing.T) {
	tests := []struct {
		name    string
		match   createMatch
		wantErr bool
	}{
		{
			name: "doubles",
			match: createMatch{
				TeamA:     []matchSlot{{PlayerID: uuid.NameSpaceDNS}, {PlayerID: uuid.NameSpaceURL}},
				TeamB:     []matchSlot{{PlayerID: uuid.NameSpaceOID}, {PlayerID: uuid.NameSpaceX500}},
				ScoreA:    6,
				ScoreB:    4,
				ScoreType: "sets",
			},
			wantErr: false,
		},
		{
			name: "singles",
			match: createMatch{
				TeamA:     []matchSlot{{PlayerID: uuid.NameSpaceDNS}},
				TeamB:     []matchSlot{{PlayerID: uuid.NameSpaceURL}},
				ScoreA:    2,
				ScoreB:    1,
				ScoreType: "sets",
			},
			wantErr: false,
		},
		{
			name: "guest partner",
			match: createMatch{
				TeamA:     []matchSlot{{PlayerID: uuid.NameSpaceDNS}, {Guest: true}},
				TeamB:     []matchSlot{{PlayerID: uuid.NameSpaceOID}, {PlayerID: uuid.NameSpaceX500}},
				ScoreA:    21,
				ScoreB:    15,
				ScoreType: "points",
			},
			wantErr: false,
		},
		{
			name: "empty slot",
			match: createMatch{
				TeamA:     []matchSlot{{PlayerID: uuid.NameSpaceDNS}, {}},
				TeamB:     []matchSlot{{PlayerID: uuid.NameSpaceOID}, {PlayerID: uuid.NameSpaceX500}},
				ScoreA:    6,
				ScoreB:    4,
				ScoreType: "sets",
			},
			wantErr: true,
		},
		{
			name: "guest with id",
			match: createMatch{
				TeamA:     []matchSlot{{PlayerID: uuid.NameSpaceDNS}, {PlayerID: uuid.NameSpaceURL, Guest: true}},
				TeamB:     []matchSlot{{PlayerID: uuid.NameSpaceOID}, {PlayerID: uuid.NameSpaceX500}},
				ScoreA:    6,
				ScoreB:    4,
				ScoreType: "sets",
			},
			wantErr: true,
		},
		{
			name: "empty team",
			match: createMatch{
				TeamA:     []matchSlot{{PlayerID: uuid.NameSpaceDNS}},
				ScoreA:    6,
				ScoreB:    4,
				ScoreType: "sets",
			},
			wantErr: true,
		},
		{
			name: "three players",
			match: createMatch{
				TeamA:     []matchSlot{{PlayerID: uuid.NameSpaceDNS}, {Guest: true}, {Guest: true}},
				TeamB:     []matchSlot{{PlayerID: uuid.NameSpaceOID}, {PlayerID: uuid.NameSpaceX500}},
				ScoreA:    6,
				ScoreB:    4,
				ScoreType: "sets",
			},
			wantErr: true,
		},
		{
			name: "bad score type",
			match: createMatch{
				TeamA:     []matchSlot{{PlayerID: uuid.NameSpaceDNS}},
				TeamB:     []matchSlot{{PlayerID: uuid.NameSpaceURL}},
				ScoreA:    6,
				ScoreB:    4,
				ScoreType: "games",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.match.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_createMatch_convertToDomainMatch(t *testing.T) {
	playedAt := time.Date(2024, time.May, 4, 19, 0, 0, 0, time.UTC)
	req := createMatch{
		TeamA:       []matchSlot{{PlayerID: uuid.NameSpaceDNS}, {Guest: true}},
		TeamB:       []matchSlot{{PlayerID: uuid.NameSpaceOID}, {PlayerID: uuid.NameSpaceX500}},
		ScoreA:      21,
		ScoreB:      17,
		ScoreType:   "points",
		ScoreTarget: 21,
		PlayedAt:    &playedAt,
	}
	m := req.convertToDomainMatch()
	if !m.PlayedAt.Equal(playedAt) {
		t.Errorf("PlayedAt = %v, want %v", m.PlayedAt, playedAt)
	}
	if len(m.TeamA) != 2 || !m.TeamA[1].Guest {
		t.Errorf("TeamA = %v, want known player and guest", m.TeamA)
	}
	if got := m.TeamA.Active(); len(got) != 1 || got[0] != uuid.NameSpaceDNS {
		t.Errorf("TeamA.Active() = %v", got)
	}
	if m.ScoreType != domain.ScorePoints || m.ScoreTarget != 21 {
		t.Errorf("score type/target = %v/%d", m.ScoreType, m.ScoreTarget)
	}

	req.PlayedAt = nil
	if req.convertToDomainMatch().PlayedAt.IsZero() {
		t.Error("PlayedAt should default to the current time")
	}
}

func Test_planRotation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request planRotation
		wantErr bool
	}{
		{
			name:    "pool of four",
			request: planRotation{PlayerIDs: []uuid.UUID{uuid.NameSpaceDNS, uuid.NameSpaceURL, uuid.NameSpaceOID, uuid.NameSpaceX500}},
			wantErr: false,
		},
		{
			name:    "empty pool",
			request: planRotation{},
			wantErr: true,
		},
		{
			name:    "nil id",
			request: planRotation{PlayerIDs: []uuid.UUID{uuid.NameSpaceDNS, uuid.Nil}},
			wantErr: true,
		},
		{
			name:    "duplicate",
			request: planRotation{PlayerIDs: []uuid.UUID{uuid.NameSpaceDNS, uuid.NameSpaceDNS}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.request.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
