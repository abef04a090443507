package service

type LikeService interface {
	// ToggleLike flips the viewer's like on the video and reports the
	// resulting state.
	ToggleLike(viewerId, videoId string) (bool, error)
}
