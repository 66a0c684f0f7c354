package configwatcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"skillcal_backend/internal/config"
	"skillcal_backend/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounce = time.Second

type ConfigReloader func(cfg *config.Config)

// Watch 监听配置文件变化，防抖后重新加载并回调 reloader，直到 ctx 结束。
// 监听的是所在目录，编辑器以 rename 方式保存时也能收到事件。
func Watch(ctx context.Context, configFile string, reloader ConfigReloader) error {
	if configFile == "" {
		return fmt.Errorf("configwatcher: no config file to watch")
	}
	absPath, err := filepath.Abs(configFile)
	if err != nil {
		return fmt.Errorf("configwatcher: resolve %s: %w", configFile, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("configwatcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return fmt.Errorf("configwatcher: watch %s: %w", absPath, err)
	}

	go loop(ctx, watcher, absPath, reloader)
	return nil
}

func loop(ctx context.Context, watcher *fsnotify.Watcher, absPath string, reloader ConfigReloader) {
	defer watcher.Close()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != absPath {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				timer.Reset(debounce)
			}
		case <-timer.C:
			newCfg, err := config.LoadConfig(filepath.Dir(absPath))
			if err != nil {
				logger.Log.Error("Failed to reload config", zap.Error(err))
				continue
			}
			logger.Log.Info("Config reloaded", zap.String("file", absPath))
			reloader(newCfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Log.Error("Config watcher error", zap.Error(err))
		}
	}
}
