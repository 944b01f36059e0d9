// @title                       Portfolio API
// @version                     1.0
// @description                 Authentication core of the portfolio CMS: origin-bound sessions, key exchange and CORS allow-list.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import "github.com/DhairyaPatel2210/portfolio/cmd/portfolio/cmd"

func main() {
	cmd.Execute()
}
