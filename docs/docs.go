// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Вход в систему",
                "parameters": [
                    {"description": "Email и пароль", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.LoginInput"}}
                ],
                "responses": {
                    "200": {"description": "JWT токен и пользователь"},
                    "400": {"description": "Ошибка валидации"},
                    "401": {"description": "Неверный email или пароль"}
                }
            }
        },
        "/season/standings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["standings"],
                "summary": "Таблица сезона",
                "responses": {"200": {"description": "Таблица сезона"}}
            }
        },
        "/tournaments/{tournamentID}/standings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["standings"],
                "summary": "Таблица турнира",
                "parameters": [{"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Таблица"},
                    "404": {"description": "Турнир не найден"}
                }
            }
        },
        "/tournaments/{tournamentID}/scoreboard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["scoreboard"],
                "summary": "Табло турнира",
                "parameters": [{"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Scoreboard"}},
                    "404": {"description": "Турнир не найден"}
                }
            }
        },
        "/tournaments/{tournamentID}/referee-matches": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["scorecard"],
                "summary": "Матчи, которые судит команда",
                "parameters": [{"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Матчи"},
                    "403": {"description": "Только для команд"}
                }
            }
        },
        "/matches/{matchID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["scorecard"],
                "summary": "Матч для судейской карточки",
                "parameters": [{"type": "integer", "description": "Match ID", "name": "matchID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "Матч и судейская бригада"},
                    "403": {"description": "Команда не судит этот матч"},
                    "404": {"description": "Матч не найден"}
                }
            }
        },
        "/matches/{matchID}/coin-toss": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scorecard"],
                "summary": "Жеребьёвка и судейская бригада",
                "parameters": [
                    {"type": "integer", "description": "Match ID", "name": "matchID", "in": "path", "required": true},
                    {"description": "Результат жеребьёвки и бригада", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/services.CoinTossInput"}}
                ],
                "responses": {
                    "200": {"description": "Обновлённый матч"},
                    "400": {"description": "Неверная бригада"},
                    "403": {"description": "Команда не судит этот матч"}
                }
            }
        },
        "/matches/{matchID}/events": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["scorecard"],
                "summary": "Журнал очков матча",
                "parameters": [{"type": "integer", "description": "Match ID", "name": "matchID", "in": "path", "required": true}],
                "responses": {"200": {"description": "События в порядке создания"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Типы: TD, PAT1, PAT2, SAFETY. Номер игрока можно передать строкой или числом.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["scorecard"],
                "summary": "Записать очки",
                "parameters": [
                    {"type": "integer", "description": "Match ID", "name": "matchID", "in": "path", "required": true},
                    {"description": "Событие", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.recordEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Событие и пересчитанный матч"},
                    "400": {"description": "Неизвестный тип события"},
                    "403": {"description": "Команда не судит этот матч"}
                }
            }
        },
        "/matches/{matchID}/events/{eventID}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["scorecard"],
                "summary": "Удалить событие",
                "parameters": [
                    {"type": "integer", "description": "Match ID", "name": "matchID", "in": "path", "required": true},
                    {"type": "integer", "description": "Score event ID", "name": "eventID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Пересчитанный матч"},
                    "404": {"description": "Событие не найдено"}
                }
            }
        },
        "/matches/{matchID}/switch-offense": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["scorecard"],
                "summary": "Смена владения",
                "parameters": [{"type": "integer", "description": "Match ID", "name": "matchID", "in": "path", "required": true}],
                "responses": {"200": {"description": "Обновлённый матч"}}
            }
        },
        "/matches/{matchID}/recompute": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["scorecard"],
                "summary": "Пересчитать счёт по журналу",
                "parameters": [{"type": "integer", "description": "Match ID", "name": "matchID", "in": "path", "required": true}],
                "responses": {"200": {"description": "Обновлённый матч"}}
            }
        },
        "/admin/tournaments/{tournamentID}/standings/publish": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Загружает JSON-снимок таблицы в хранилище и оповещает зрителей.",
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Опубликовать таблицу турнира",
                "parameters": [{"type": "integer", "description": "Tournament ID", "name": "tournamentID", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/services.PublishedSnapshot"}},
                    "403": {"description": "Только администратор"},
                    "404": {"description": "Турнир не найден"},
                    "503": {"description": "Хранилище не настроено"}
                }
            }
        },
        "/admin/matches/{matchID}/score": {
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Пустое значение снимает счёт. Некорректное или отрицательное значение считается отсутствующим.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Ручная правка счёта (админ)",
                "parameters": [
                    {"type": "integer", "description": "Match ID", "name": "matchID", "in": "path", "required": true},
                    {"description": "Счёт", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.manualScoreRequest"}}
                ],
                "responses": {
                    "200": {"description": "Обновлённый матч"},
                    "403": {"description": "Только администратор"},
                    "404": {"description": "Матч не найден"}
                }
            }
        }
    },
    "definitions": {
        "services.LoginInput": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "services.CoinTossInput": {
            "type": "object",
            "properties": {
                "winner_is_team1": {"type": "boolean"},
                "offense_is_team1": {"type": "boolean"},
                "officials": {"type": "array", "items": {"$ref": "#/definitions/models.OfficialAssignment"}}
            }
        },
        "services.PublishedSnapshot": {
            "type": "object",
            "properties": {
                "tournament_id": {"type": "integer"},
                "key": {"type": "string"},
                "url": {"type": "string"},
                "published_at": {"type": "string"}
            }
        },
        "handlers.recordEventRequest": {
            "type": "object",
            "properties": {
                "event_type": {"type": "string", "enum": ["TD", "PAT1", "PAT2", "SAFETY"]},
                "jersey": {"type": "string"}
            }
        },
        "handlers.manualScoreRequest": {
            "type": "object",
            "properties": {"team1_score": {"type": "string"}, "team2_score": {"type": "string"}}
        },
        "models.OfficialAssignment": {
            "type": "object",
            "properties": {
                "role": {"type": "string", "enum": ["REF", "DJ", "FJ", "SJ"]},
                "name": {"type": "string"},
                "license_number": {"type": "string"}
            }
        },
        "models.ScoreboardGame": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "team1": {"type": "string"},
                "team2": {"type": "string"},
                "score1": {"type": "integer"},
                "score2": {"type": "integer"},
                "start_time": {"type": "string"},
                "field_number": {"type": "integer"},
                "finished": {"type": "boolean"}
            }
        },
        "models.Scoreboard": {
            "type": "object",
            "properties": {
                "tournament_id": {"type": "integer"},
                "games": {"type": "array", "items": {"$ref": "#/definitions/models.ScoreboardGame"}},
                "all_finished": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Flag League API",
	Description:      "Standings, season table and live scorecard for a flag football league.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
