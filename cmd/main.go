package main

import (
	"backend/config"
	"backend/routes"
	"backend/utils"
)

func main() {
	config.InitDB()
	config.InitLedgerConfig()
	utils.InitS3()
	utils.InitRekognition()
	r := routes.SetupRouter()
	r.Run(":8080")
}
