package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"gjc_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus entri token_blacklist
// yang access token-nya sudah kadaluarsa. Jalan tiap jam.
func StartBlacklistCleanupScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("@hourly", func() {
		res := db.Where("expired_at < ?", time.Now()).Delete(&model.TokenBlacklist{})
		if res.Error != nil {
			log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[CLEANUP] %d token kadaluarsa dihapus", res.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] Gagal daftar job: %v", err)
		return c
	}
	c.Start()
	return c
}
