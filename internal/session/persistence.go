package session

import (
	"encoding/json"
	"strconv"

	"github.com/selvamraja700/mymusic/internal/storage"
)

// Persistence is write-through and best-effort: every mutation of a durable
// field writes it immediately, and a failed write never fails the mutation.

func (s *Session) restore() {
	if s.store == nil {
		return
	}

	if v, ok, err := s.store.Get(storage.KeyVolume); err == nil && ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			s.volume = f
			s.previousVolume = f
		}
	}

	if v, ok, err := s.store.Get(storage.KeyLikedSongs); err == nil && ok {
		var liked []string
		if json.Unmarshal([]byte(v), &liked) == nil {
			s.liked = liked
		}
	}

	if v, ok, err := s.store.Get(storage.KeyRecentlyPlayed); err == nil && ok {
		var recent []RecentEntry
		if json.Unmarshal([]byte(v), &recent) == nil {
			if len(recent) > recentMax {
				recent = recent[:recentMax]
			}
			s.recent = recent
		}
	}

	if v, ok, err := s.store.Get(storage.KeyRepeatMode); err == nil && ok {
		s.repeat = ParseRepeatMode(v)
	}

	if v, ok, err := s.store.Get(storage.KeyShuffleEnabled); err == nil && ok {
		s.shuffle = v == "true"
	}
}

func (s *Session) saveVolumeLocked() {
	if s.store == nil {
		return
	}
	_ = s.store.Set(storage.KeyVolume, strconv.FormatFloat(s.volume, 'f', -1, 64))
}

func (s *Session) saveLikedLocked() {
	if s.store == nil {
		return
	}
	liked := s.liked
	if liked == nil {
		liked = []string{}
	}
	data, err := json.Marshal(liked)
	if err != nil {
		return
	}
	_ = s.store.Set(storage.KeyLikedSongs, string(data))
}

func (s *Session) saveRecentLocked() {
	if s.store == nil {
		return
	}
	recent := s.recent
	if recent == nil {
		recent = []RecentEntry{}
	}
	data, err := json.Marshal(recent)
	if err != nil {
		return
	}
	_ = s.store.Set(storage.KeyRecentlyPlayed, string(data))
}

func (s *Session) saveRepeatLocked() {
	if s.store == nil {
		return
	}
	_ = s.store.Set(storage.KeyRepeatMode, s.repeat.String())
}

func (s *Session) saveShuffleLocked() {
	if s.store == nil {
		return
	}
	_ = s.store.Set(storage.KeyShuffleEnabled, strconv.FormatBool(s.shuffle))
}
