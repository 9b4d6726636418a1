package main

// General API documentation for swaggo. Run `make swagger-gen` to generate docs.
//
// @title           DevOps Demo App API
// @version         1.0
// @description     Small HTTP service used to exercise the deployment pipeline.
//
// @contact.name   DevOps-project1 maintainers
// @contact.url    https://github.com/Gog2006/DevOps-project1
//
// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT
//
// @BasePath  /
//
// @schemes http
