package main

import "github.com/marqueshop/recommender/internal/app"

func main() {
	err := app.NewRecommenderApp().Run()
	if err != nil {
		panic(err)
	}
}
