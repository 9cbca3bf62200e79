package model

type SystemInfo struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Version   string `json:"version"`
	StartTime string `json:"startTime"`
}
