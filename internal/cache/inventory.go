package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix     = "user:%d"
	PostKeyPrefix     = "post:%d"
	ProfileKeyPrefix  = "profile:user:%d"
	ProfileListKey    = "profiles:all"
	PostPageKeyPrefix = "posts:page:%d"
)

const (
	UserTTL        = 5 * time.Minute
	ProfileTTL     = 10 * time.Minute
	PostTTL        = 30 * time.Minute
	ProfileListTTL = 2 * time.Minute
	PostPageTTL    = 1 * time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func PostPageKey(page int) string {
	return fmt.Sprintf(PostPageKeyPrefix, page)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
	Invalidate(ctx, ProfileKey(userID))
	Invalidate(ctx, ProfileListKey)
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
	InvalidatePostPages(ctx)
}

// InvalidatePostPages drops all cached feed pages.
func InvalidatePostPages(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "posts:page:*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}

func InvalidateProfiles(ctx context.Context) {
	Invalidate(ctx, ProfileListKey)
}
