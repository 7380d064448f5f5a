// internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	authModel "schooladmin_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purges expired blacklist rows and stale
// refresh tokens once a day. TTL is TOKEN_BLACKLIST_TTL_DAYS (default 7).
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	ttlDays := 7
	if raw := os.Getenv("TOKEN_BLACKLIST_TTL_DAYS"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			ttlDays = v
		}
	}

	go func() {
		for {
			cutoff := time.Now().AddDate(0, 0, -ttlDays)

			res := db.Unscoped().
				Where("created_at < ? OR expired_at < ?", cutoff, time.Now()).
				Delete(&authModel.TokenBlacklist{})
			if res.Error != nil {
				log.Println("[ERROR] Blacklist cleanup failed:", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("🧹 Blacklist cleanup removed %d token(s)\n", res.RowsAffected)
			}

			if err := db.Unscoped().
				Where("expires_at < ?", time.Now()).
				Delete(&authModel.RefreshToken{}).Error; err != nil {
				log.Println("[ERROR] Refresh token cleanup failed:", err)
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
