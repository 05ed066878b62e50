package session

import (
	"math/rand"

	"github.com/selvamraja700/mymusic/internal/library"
)

// ComputeNext returns the index of the track that should play after index,
// given the queue length and repeat mode. The second result is false when
// the queue is exhausted (or empty).
//
// Shuffle never enters this computation: shuffling permutes the queue when
// the flag is toggled, and ComputeNext always walks the queue linearly.
func ComputeNext(queueLen, index int, repeat RepeatMode) (int, bool) {
	if queueLen == 0 {
		return 0, false
	}
	if repeat == RepeatOne {
		// Same track; the caller restarts it from position zero.
		return index, true
	}
	if index+1 < queueLen {
		return index + 1, true
	}
	if repeat == RepeatAll {
		return 0, true
	}
	return 0, false
}

// shufflePermutation returns a pseudo-random permutation of tracks using the
// given source. The permutation is arbitrary; no reproducibility is promised.
func shufflePermutation(tracks []library.Track, rng *rand.Rand) []library.Track {
	out := make([]library.Track, len(tracks))
	copy(out, tracks)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// indexOf returns the position of the track with the given ID, or -1.
func indexOf(tracks []library.Track, id string) int {
	for i, t := range tracks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
