package db

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const Database = "lalahouse"

type Config struct {
	Url string
}

func Create(cfg Config) (*mongo.Client, error) {
	mongoClient, err := mongo.Connect(context.Background(), options.Client().ApplyURI(cfg.Url))
	if err != nil {
		log.Printf("connection error :%v", err)
		return nil, err
	}

	err = mongoClient.Ping(context.Background(), readpref.Primary())
	if err != nil {
		log.Printf("ping mongodb error :%v", err)
		return nil, err
	}

	return mongoClient, nil
}
