package response

const (
	ServerError = "Server error, try again later"
	//----------------------
	MoviesNotFound   = "Movies not found"
	MovieNotFound    = "Movie not found"
	GenreNotFound    = "Genre not found"
	DirectorNotFound = "Director not found"
	//----------------------
	UserNotFound  = "Cannot find user"
	UsersNotFound = "Users not found"
	//----------------------
	InvalidToken = "Invalid/Stale Token"
	//----------------------
	UserPassNotMatch = "Username and password do not match"
	//----------------------
	BadRequestBody = "Incorrect request body"
	//----------------------
	UsernameAlreadyExist = "This username already exists"
	//----------------------
)
