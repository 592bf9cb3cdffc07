// SPDX-License-Identifier: AGPL-3.0-only
package postview

import "context"

// FollowState is the follow-button region. The toggle is never flipped
// optimistically: the boolean only changes after the server confirms, so a
// failure needs no rollback.
type FollowState struct {
	ProfileName string
	Available   bool // false while unresolved or for own posts
	Following   bool
	Notice      string // inline failure notice, state untouched
}

func (r *Reconciler) resolveFollow(ctx context.Context, token, currentUser, profileName string) FollowState {
	res := r.gw.ReadProfile(ctx, token, profileName)
	if !res.Ok() || res.Data == nil {
		return FollowState{ProfileName: profileName}
	}

	following := false
	for _, follower := range res.Data.Followers {
		if follower.Name == currentUser {
			following = true
			break
		}
	}

	return FollowState{
		ProfileName: profileName,
		Available:   true,
		Following:   following,
	}
}

// ToggleFollow follows or unfollows based on the cached boolean and flips
// it only on success. On failure the prior state is returned with an
// inline notice.
func (r *Reconciler) ToggleFollow(ctx context.Context, token string, state FollowState) FollowState {
	if !state.Available {
		return state
	}

	var err error
	if state.Following {
		err = r.gw.Unfollow(ctx, token, state.ProfileName).Err()
	} else {
		err = r.gw.Follow(ctx, token, state.ProfileName).Err()
	}

	if err != nil {
		state.Notice = err.Error()
		return state
	}

	state.Following = !state.Following
	state.Notice = ""
	return state
}
