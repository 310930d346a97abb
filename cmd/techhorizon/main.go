// @title                       Tech Horizon API
// @version                     1.0
// @description                 Product discovery marketplace: submissions, moderation, upvotes, reviews, coupons and payments.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import "github.com/muhammad-sayem/Tech-Horizon-Server/cmd/techhorizon/commands"

func main() {
	commands.Execute()
}
