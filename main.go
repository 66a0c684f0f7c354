// @title skillcal API
// @version 1.0
// @description 测评评分与技能等级校准服务
// @BasePath /api

package main

import (
	"os"

	"skillcal_backend/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
