package main

import (
	"encoding/json"
	"log"
	"path/filepath"

	"github.com/quasilyte/gdata"
)

// savedCamera is the view state stored on disk per map, so reopening a map
// lands where you left off.
type savedCamera struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

var gdataManager *gdata.Manager

// initPersistence initializes the gdata manager for view-state storage
func initPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "fusemapview",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	return nil
}

func cameraKey(mapPath string) string {
	return "camera-" + filepath.Base(mapPath)
}

func loadCamera(mapPath string) *savedCamera {
	if gdataManager == nil {
		return nil
	}
	data, err := gdataManager.LoadItem(cameraKey(mapPath))
	if err != nil || data == nil {
		return nil
	}
	var saved savedCamera
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Warning: Could not parse saved camera: %v", err)
		return nil
	}
	return &saved
}

func saveCamera(mapPath string, saved savedCamera) {
	if gdataManager == nil {
		return
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return
	}
	if err := gdataManager.SaveItem(cameraKey(mapPath), data); err != nil {
		log.Printf("Warning: Could not save camera: %v", err)
	}
}
